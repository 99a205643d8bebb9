package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"

	"github.com/tanishpoddar/logitrack/core/model"
)

// WriteJSON writes the optimization result to w in indented JSON.
func WriteJSON(w io.Writer, res *model.OptimizationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteCSV writes the allocation plan to w as one shipment per row.
// Warehouses are emitted in sorted order so the output is deterministic.
func WriteCSV(w io.Writer, res *model.OptimizationResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"warehouse_id", "order_id", "quantity"}); err != nil {
		return err
	}
	ids := make([]string, 0, len(res.AllocationPlan))
	for id := range res.AllocationPlan {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		for _, e := range res.AllocationPlan[id] {
			rec := []string{id, e.OrderID, strconv.Itoa(e.Quantity)}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

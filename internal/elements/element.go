// Package elements holds the periodic-table reference data and the lookup
// behavior behind the element search and alphabet game surfaces.
package elements

import (
	"encoding/json"
	"strconv"
)

// Element is one periodic-table record, in the shape the data generator
// emits. Group is a string because lanthanides and actinides carry a label
// instead of a group number.
type Element struct {
	AtomicNumber  int      `json:"atomic_number"`
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	AtomicWeight  *float64 `json:"atomic_weight"`
	Group         string   `json:"group"`
	Period        int      `json:"period"`
	Category      string   `json:"category"`
	ElectronConf  string   `json:"electron_configuration"`
	Summary       string   `json:"summary"`
	Uses          string   `json:"uses"`
}

// UnmarshalJSON accepts both numeric and string group values; the source
// data uses numbers for main-group elements and labels for the f-block.
func (e *Element) UnmarshalJSON(data []byte) error {
	type alias Element
	aux := struct {
		*alias
		Group json.RawMessage `json:"group"`
	}{alias: (*alias)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Group) == 0 {
		e.Group = "-"
		return nil
	}

	var s string
	if err := json.Unmarshal(aux.Group, &s); err == nil {
		e.Group = s
		return nil
	}
	var n int
	if err := json.Unmarshal(aux.Group, &n); err != nil {
		return err
	}
	e.Group = strconv.Itoa(n)
	return nil
}

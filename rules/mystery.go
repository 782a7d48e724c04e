package rules

import "fmt"

// Reveal is what a collected mystery bag turned out to be.
type Reveal struct {
	Value  int
	Weight float64
}

// RevealMystery asks the mystery_bag script for the bag's worth. ok is false
// when no script is loaded, in which case the declared value stands.
func (r *Runtime) RevealMystery(player, value int, weight float64) (Reveal, bool, error) {
	out, ok, err := r.call(MysteryBag, map[string]any{
		"player": player,
		"value":  value,
		"weight": weight,
	})
	if !ok || err != nil {
		return Reveal{}, ok, err
	}

	res := Reveal{Value: value, Weight: weight}
	if v, present := out["value"]; present {
		n, isNum := number(v)
		if !isNum {
			return Reveal{}, true, fmt.Errorf("rules: %s: value is %T, want number", MysteryBag, v)
		}
		res.Value = int(n)
	}
	if v, present := out["weight"]; present {
		if n, isNum := number(v); isNum {
			res.Weight = n
		}
	}
	return res, true, nil
}

package rules

// MoleState is the part of a mole a script may read and steer.
type MoleState struct {
	X, Y        float64
	Speed       float64
	MovingRight bool
	DT          float64
	MinX, MaxX  float64
}

// MoleStep is the script's decision for one tick, in pixels.
type MoleStep struct {
	DX, DY      float64
	MovingRight bool
}

// MoveMole runs the mole script. ok is false when no script is loaded.
func (r *Runtime) MoveMole(s MoleState) (MoleStep, bool, error) {
	out, ok, err := r.call(Mole, map[string]any{
		"x":            s.X,
		"y":            s.Y,
		"speed":        s.Speed,
		"moving_right": s.MovingRight,
		"dt":           s.DT,
		"min_x":        s.MinX,
		"max_x":        s.MaxX,
	})
	if !ok || err != nil {
		return MoleStep{}, ok, err
	}

	step := MoleStep{MovingRight: s.MovingRight}
	if v, present := out["dx"]; present {
		step.DX, _ = number(v)
	}
	if v, present := out["dy"]; present {
		step.DY, _ = number(v)
	}
	if v, present := out["moving_right"]; present {
		if b, isBool := v.(bool); isBool {
			step.MovingRight = b
		}
	}
	return step, true, nil
}

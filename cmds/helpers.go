package cmds

// Var defines name to set the returned value from the following word, and name. to reset it.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines name to turn the returned flag on and !name to turn it off.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}))

	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

// Collect defines name to append the following word to the returned slice.
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	return &value
}

// Override is a switch that may be left unset, so a default from elsewhere applies.
type Override struct {
	set   bool
	value bool
}

// Or returns the switch value if name or !name was given, fallback otherwise.
func (o *Override) Or(fallback bool) bool {
	if o.set {
		return o.value
	}
	return fallback
}

// OverrideSwitch defines name to turn the returned switch on, !name to turn it off and name. to unset it.
func OverrideSwitch(name string) *Override {
	var o Override

	Define(name, Func(func() {
		o = Override{set: true, value: true}
	}))

	Define("!"+name, Func(func() {
		o = Override{set: true, value: false}
	}))

	Define(name+".", Func(func() {
		o = Override{}
	}))

	return &o
}

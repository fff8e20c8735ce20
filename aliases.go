package complexnumbers

// Aliases for readers who prefer operator-style names.

// Times is an alias for Multiply.
func (c Complex) Times(o Complex) Complex { return c.Multiply(o) }

// Plus is an alias for Add.
func (c Complex) Plus(o Complex) Complex { return c.Add(o) }

// Minus is an alias for Subtract.
func (c Complex) Minus(o Complex) Complex { return c.Subtract(o) }

// Over is an alias for Divide.
func (c Complex) Over(o Complex) (Complex, error) { return c.Divide(o) }

// DividedBy is an alias for Divide.
func (c Complex) DividedBy(o Complex) (Complex, error) { return c.Divide(o) }

// Phase is an alias for Argument.
func (c Complex) Phase() float64 { return c.Argument() }

// Abs is an alias for Modulus.
func (c Complex) Abs() float64 { return c.Modulus() }

// AbsSquared is an alias for ModulusSquared.
func (c Complex) AbsSquared() float64 { return c.ModulusSquared() }

package pricing

// InvalidArgumentError covers bad period counts and malformed parameter
// sets. Deterministic given the input - nothing to retry.
type InvalidArgumentError struct {
	Err error
}

func (e InvalidArgumentError) Error() string {
	return e.Err.Error()
}

// ShapeMismatchError means the return and factor series (or the factor
// columns themselves) disagree on length.
type ShapeMismatchError struct {
	Err error
}

func (e ShapeMismatchError) Error() string {
	return e.Err.Error()
}

// SingularDesignError means the regression design matrix is not full
// column rank - too few observations, collinear factors, or an all-zero
// factor column.
type SingularDesignError struct {
	Err error
}

func (e SingularDesignError) Error() string {
	return e.Err.Error()
}

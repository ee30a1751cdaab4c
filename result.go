package fftcompat

// Result is the closed status taxonomy reported by every operation. Values
// match cuFFT's result codes.
type Result int

const (
	Success                 Result = 0
	InvalidPlan             Result = 1
	AllocFailed             Result = 2
	InvalidType             Result = 3
	InvalidValue            Result = 4
	InternalError           Result = 5
	ExecFailed              Result = 6
	SetupFailed             Result = 7
	InvalidSize             Result = 8
	UnalignedData           Result = 9
	IncompleteParameterList Result = 10
	InvalidDevice           Result = 11
	ParseError              Result = 12
	NoWorkspace             Result = 13
	NotImplemented          Result = 14
	NotSupported            Result = 16
)

// Ok reports whether the result is Success.
func (r Result) Ok() bool {
	return r == Success
}

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case InvalidPlan:
		return "invalid plan"
	case AllocFailed:
		return "allocation failed"
	case InvalidType:
		return "invalid type"
	case InvalidValue:
		return "invalid value"
	case InternalError:
		return "internal error"
	case ExecFailed:
		return "execution failed"
	case SetupFailed:
		return "setup failed"
	case InvalidSize:
		return "invalid size"
	case UnalignedData:
		return "unaligned data"
	case IncompleteParameterList:
		return "incomplete parameter list"
	case InvalidDevice:
		return "invalid device"
	case ParseError:
		return "no valid plan configuration"
	case NoWorkspace:
		return "no workspace"
	case NotImplemented:
		return "not implemented"
	case NotSupported:
		return "not supported"
	}
	return "unknown result"
}

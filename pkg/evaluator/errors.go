package evaluator

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	Undefined = ErrorKind(iota)
	UndefinedVariable
	NoContextBound
	UnsupportedOperator
	InvalidLiteral
	MalformedTree
	NoResult
)

// ErrorKind classifies evaluation failures.
type ErrorKind uint

func (k ErrorKind) String() string {
	switch k {
	case UndefinedVariable:
		return "UndefinedVariable"
	case NoContextBound:
		return "NoContextBound"
	case UnsupportedOperator:
		return "UnsupportedOperator"
	case InvalidLiteral:
		return "InvalidLiteral"
	case MalformedTree:
		return "MalformedTree"
	case NoResult:
		return "NoResult"
	default:
		return "Undefined"
	}
}

type evaluationError struct {
	kind          ErrorKind
	originalError error
	path          []string
}

func (e evaluationError) Error() string {
	return e.originalError.Error()
}

func (e evaluationError) Unwrap() error {
	return e.originalError
}

func (k ErrorKind) New(msg string) error {
	return evaluationError{kind: k, originalError: errors.New(msg)}
}

func (k ErrorKind) Errorf(msg string, args ...interface{}) error {
	return evaluationError{kind: k, originalError: errors.Errorf(msg, args...)}
}

func (k ErrorKind) Wrapf(err error, msg string, args ...interface{}) error {
	return evaluationError{kind: k, originalError: errors.Wrapf(err, msg, args...)}
}

// GetErrorKind returns the kind of an evaluation error, or Undefined for any other error.
func GetErrorKind(err error) ErrorKind {
	var ee evaluationError
	if errors.As(err, &ee) {
		return ee.kind
	}
	return Undefined
}

// ErrorPath returns the chain of nodes, root first, that led to the failing node.
func ErrorPath(err error) []string {
	var ee evaluationError
	if errors.As(err, &ee) {
		return ee.path
	}
	return nil
}

func errorPush(err error, format string, args ...interface{}) error {
	if ee, ok := err.(evaluationError); ok {
		ee.path = append([]string{fmt.Sprintf(format, args...)}, ee.path...)
		return ee
	}
	return errors.Wrapf(err, format, args...)
}

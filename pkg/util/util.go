package util

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"golang.org/x/exp/constraints"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

// Is lets errors.Is match on the error code as well as on the wrapped error.
func (e *Error) Is(target error) bool {
	return e.code != nil && e.code == target
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func NewErrorf(code error, format string, a ...interface{}) error {
	return WrapErrorf(nil, code, format, a...)
}

func (e *Error) Code() error {
	return e.code
}

var (
	ErrInternalServerError = errors.New("internal Server Error")
	ErrNotFound            = errors.New("your requested Item is not found")
	ErrConflict            = errors.New("your Item already exist")
	ErrBadParamInput       = errors.New("given Param is not valid")
)

var MessageInternalServerError string = "internal server error"

func DegreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func RadiansToDegree(rad float64) float64 {
	return 180.0 * rad / math.Pi
}

func StringToFloat64(str string) (float64, error) {
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, err
	}
	return val, nil
}

// FormatFloat prints levels the way they are tagged: "1", "-2", "0.5".
func FormatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

func ReverseG[T any](arr []T) []T {
	copyArr := make([]T, len(arr)) // should do on the copy )
	copy(copyArr, arr)
	for i, j := 0, len(copyArr)-1; i < j; i, j = i+1, j-1 {
		copyArr[i], copyArr[j] = copyArr[j], copyArr[i]
	}
	return copyArr
}

// SortedUnique returns a sorted copy of arr without duplicates.
func SortedUnique[T constraints.Ordered](arr []T) []T {
	if len(arr) == 0 {
		return arr
	}
	copyArr := make([]T, len(arr))
	copy(copyArr, arr)
	sort.Slice(copyArr, func(i, j int) bool { return copyArr[i] < copyArr[j] })

	out := copyArr[:1]
	for _, v := range copyArr[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func AssertPanic(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	neturl "net/url"
	"syscall"
)

//go:generate go run github.com/dmarkham/enumer -json -type ErrorKind -trimprefix ErrorKind

// ErrorKind classifies the failure of a provider exchange
type ErrorKind int

const (
	ErrorKindUnknown   ErrorKind = iota
	ErrorKindRequest             // the request could not be built
	ErrorKindAuth                // no credential could be obtained
	ErrorKindTransport           // network failure, the server was not reached or did not answer
	ErrorKindStatus              // the server answered with a non-2xx status
	ErrorKindDecode              // the response body could not be decoded
)

type errTmpIf interface{ Temporary() bool }
type errTmp struct{ error }

func (t errTmp) Temporary() bool    { return true }
func (t *errTmp) Unwrap() error     { return t.error }
func MakeTemporary(err error) error { return &errTmp{err} }

type errKind struct {
	kind ErrorKind
	error
}

func (e *errKind) Unwrap() error { return e.error }

// WithKind marks the error with the given kind. The first kind found in the error trace wins.
func WithKind(kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &errKind{kind: kind, error: err}
}

// ErrStatus is returned when the server answers with a non-2xx status
type ErrStatus struct {
	Code   int
	Status string
	Body   string
}

func (e ErrStatus) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("response status code does not indicate success: %s", e.Status)
	}
	return fmt.Sprintf("response status code does not indicate success: %s: %s", e.Status, e.Body)
}

// KindOf inspects the error trace and returns the kind of the error
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrorKindUnknown
	}
	var ek *errKind
	if errors.As(err, &ek) {
		return ek.kind
	}
	var es ErrStatus
	if errors.As(err, &es) {
		return ErrorKindStatus
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return ErrorKindTransport
	}
	return ErrorKindUnknown
}

// Temporary inspects the error trace and returns whether the error is transient
func Temporary(err error) bool {
	var marked *errTmp
	if errors.As(err, &marked) {
		return true
	}

	var uerr *neturl.Error
	if errors.As(err, &uerr) {
		err = uerr.Err
	}

	//First override some default syscall temporary statuses
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EIO, syscall.EBUSY, syscall.ECANCELED, syscall.ECONNABORTED, syscall.ECONNRESET, syscall.ENOMEM, syscall.EPIPE:
			return true
		}
	}

	//first check explicitely marked error
	var tmp errTmpIf
	if errors.As(err, &tmp) {
		return tmp.Temporary()
	}
	var es ErrStatus
	if errors.As(err, &es) {
		return temporaryStatus(es.Code)
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return false
}

func temporaryStatus(code int) bool {
	switch code {
	case 408, 429, 500, 502, 503, 504:
		return true
	}
	return false
}

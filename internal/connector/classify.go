package connector

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"syscall"
)

// TransportKind normalizes a transport-level failure independently of the HTTP client.
type TransportKind string

const (
	TransportNone       TransportKind = ""
	TransportConnection TransportKind = "connection"
	TransportTimeout    TransportKind = "timeout"
	TransportCanceled   TransportKind = "canceled"
	TransportDecode     TransportKind = "decode"
	TransportOther      TransportKind = "other"
)

// Failure describes one failed attempt: either an upstream status code or a transport kind.
type Failure struct {
	StatusCode int
	Transport  TransportKind
	Err        error
}

type Verdict int

const (
	NonRetryable Verdict = iota
	Retryable
)

func (v Verdict) String() string {
	if v == Retryable {
		return "retryable"
	}
	return "non_retryable"
}

// Classify decides whether an attempt may be repeated. Only 500, 503 and 504
// responses and connection-level network errors are retryable; every 4xx is terminal.
func Classify(f Failure) Verdict {
	if f.StatusCode != 0 {
		switch f.StatusCode {
		case http.StatusInternalServerError, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return Retryable
		default:
			return NonRetryable
		}
	}

	switch f.Transport {
	case TransportConnection, TransportTimeout:
		return Retryable
	default:
		return NonRetryable
	}
}

func statusFailure(code int, err error) Failure {
	return Failure{StatusCode: code, Err: err}
}

func transportFailure(err error) Failure {
	return Failure{Transport: transportKind(err), Err: err}
}

func transportKind(err error) TransportKind {
	if err == nil {
		return TransportNone
	}
	if errors.Is(err, context.Canceled) {
		return TransportCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return TransportTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return TransportTimeout
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &opErr),
		errors.As(err, &dnsErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return TransportConnection
	}
	return TransportOther
}

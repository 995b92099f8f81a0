package errors

import (
	"errors"
	"fmt"
	"net/url"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	UpstreamOp  string `json:"upstream_op,omitempty"`
	UpstreamURL string `json:"upstream_url,omitempty"`
}

// Dump flattens an error for structured logging, surfacing upstream request
// details when the chain contains a url.Error.
func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		d.UpstreamOp = urlErr.Op
		d.UpstreamURL = urlErr.URL
	}

	return d
}

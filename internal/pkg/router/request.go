package router

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/shandysiswandi/gocontact/internal/pkg/goerror"
)

// Request wraps http.Request with helpers for inbound handlers.
type Request struct {
	// Request is the underlying http.Request.
	*http.Request
}

// DecodeBody decodes a JSON or application/x-www-form-urlencoded body into dst.
//
// Form values are matched against dst's json tags and decoded as strings. An
// empty body leaves dst untouched so field validation can report what is
// missing. Unknown fields are ignored.
func (r *Request) DecodeBody(dst any) error {
	if r == nil || r.Request == nil {
		return goerror.NewInvalidFormat()
	}
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		return r.decodeForm(dst)
	}

	return r.decodeJSON(dst)
}

func (r *Request) decodeJSON(dst any) error {
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return bodyError(err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return bodyError(err)
	}

	return nil
}

func (r *Request) decodeForm(dst any) error {
	if err := r.ParseForm(); err != nil {
		return bodyError(err)
	}

	values := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		values[strings.TrimSpace(key)] = r.PostForm.Get(key)
	}

	b, err := json.Marshal(values)
	if err != nil {
		return goerror.NewInvalidFormat()
	}

	if err := json.Unmarshal(b, dst); err != nil {
		return bodyError(err)
	}

	return nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return goerror.NewInvalidFormat("Request body too large")
	}
	return goerror.NewInvalidFormat()
}

package verifier

import (
	"context"
	"net/http"

	"golang.org/x/text/language"

	"github.com/rigcheck/rigcheck/pkg/defaults"
	"github.com/rigcheck/rigcheck/pkg/errors"
	"github.com/rigcheck/rigcheck/pkg/message"
	"github.com/rigcheck/rigcheck/pkg/serializer"
	"github.com/rigcheck/rigcheck/pkg/server"
)

// HandleVerify serves GET requests of the form ?build=<id>[&lang=<tag>].
// Without a lang parameter the Accept-Language header is honored.
func (v *Verifier) HandleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"method not allowed", false, nil)
		return
	}

	q := r.URL.Query()
	id := q.Get("build")
	if id == "" {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"build query parameter is required", false, map[string]any{"field": "build"})
		return
	}

	verifier := v
	tag, ok, err := requestLanguage(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "invalid language", nil)
		return
	}
	if ok {
		verifier = v.With(WithLanguage(tag))
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.VerifyHandlerTimeout)
	defer cancel()

	report, err := verifier.Verify(ctx, id)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "verification failed", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, report)
}

func requestLanguage(r *http.Request) (language.Tag, bool, error) {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		tag, err := message.ParseLanguage(lang)
		if err != nil {
			return language.Und, false, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"invalid lang parameter", err, map[string]any{"field": "lang", "value": lang})
		}
		return tag, true, nil
	}

	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return language.Und, false, nil
	}
	return tags[0], true, nil
}

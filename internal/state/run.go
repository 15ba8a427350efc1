package state

import "github.com/seranise/kedesh-go/internal/apierror"

// Run drives a fetch through the standard lifecycle. The operation's error
// is normalized: a server-supplied detail message when the envelope carried
// one, otherwise the family-specific fallback. Run returns the normalized
// error so callers can sequence on failure, but the canonical place to read
// the outcome is the resource snapshot.
func Run[T any](r *Resource[T], fallback string, op func() (T, error)) error {
	r.Pending()

	data, err := op()
	if err != nil {
		r.Reject(apierror.MessageOr(err, fallback))
		return err
	}

	r.Fulfill(data)
	return nil
}

// RunDetail drives a mutation whose payload is the server's detail string.
// On success the post-commit hooks run in order, after the resource has
// settled; invalidation is an explicit hook list, never something a hook
// triggers transitively.
func RunDetail(r *Resource[string], fallback string, op func() (string, int, error), hooks ...func()) error {
	r.Pending()

	detail, statusCode, err := op()
	if err != nil {
		code := apierror.StatusCode(err)
		if code == 0 {
			code = 500
		}
		r.RejectCode(apierror.MessageOr(err, fallback), code)
		return err
	}

	r.FulfillCode(detail, statusCode)
	for _, hook := range hooks {
		hook()
	}
	return nil
}

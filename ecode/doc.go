// Package ecode defines the business error codes carried in API failure
// responses, their default text and their HTTP status mapping.
//
// Codes follow a fixed numbering scheme:
//   - 0: Success (OK)
//   - -100 to -199: Authentication errors
//   - -400 to -499: Request and resource errors
//   - -500+: Server errors
//
// Usage with the resp package:
//
//	resp.Fail(w, &resp.Exception{
//	    Status:  ecode.ToHTTPStatus(ecode.Unauthorized),
//	    Code:    ecode.Unauthorized,
//	    Message: ecode.Text(ecode.Unauthorized),
//	})
package ecode

// Package resp provides the HTTP response helpers used by every handler.
//
// Success responses write the payload as-is:
//
//	resp.Success(w, task)
//	resp.WithStatusCode(w, http.StatusCreated, task)
//	resp.Success(w, "Task deleted successfully") // {"message": "..."}
//
// Failure responses use a fixed envelope:
//
//	{"code": -404, "message": "Task not found", "errors": ...}
//
//	resp.Fail(w, resp.NotFound("Task not found"))
package resp

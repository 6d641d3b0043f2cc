package domain

type CtxKey string

const (
	KeySubject   CtxKey = "Subject"
	KeyUserRole  CtxKey = "Role"
	KeyRequestID CtxKey = "RequestID"
)

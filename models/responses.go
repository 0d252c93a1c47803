// SPDX-License-Identifier: Apache-2.0

package models

// Response status values used by every acknowledgment and error body.
const (
	StatusSuccess = "Sucesso"
	StatusError   = "error"
)

// Response is the {status, message} acknowledgment body returned by write
// endpoints and by every error path. Product creation additionally reports
// the database-generated id.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// Success builds a success acknowledgment with the given message.
func Success(message string) Response {
	return Response{Status: StatusSuccess, Message: message}
}

// SuccessWithID builds a success acknowledgment carrying a generated
// identifier.
func SuccessWithID(message string, id int64) Response {
	return Response{Status: StatusSuccess, Message: message, ID: id}
}

// Error builds an error body with the given message.
func Error(message string) Response {
	return Response{Status: StatusError, Message: message}
}

package questions

import "codeberg.org/asklavinia/server/internal/qalog"

// response payload for the logged question list
type ListResponse struct {
	Questions []qalog.QuestionAnswer `json:"questions"`
	Count     int                    `json:"count"`
}

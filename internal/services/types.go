package services

import (
	"fmt"
	"strconv"
	"time"
)

// Score is a single answer value: 0..3, or NA when the question does not
// apply. NA answers are excluded from averaging.
type Score int

// ScoreNA is the "not applicable" sentinel. It serializes as the JSON string
// "NA" for compatibility with the persisted snapshot format.
const ScoreNA Score = -1

func (s Score) IsNA() bool { return s == ScoreNA }

func (s Score) String() string {
	if s == ScoreNA {
		return "NA"
	}
	return strconv.Itoa(int(s))
}

func (s Score) MarshalJSON() ([]byte, error) {
	if s == ScoreNA {
		return []byte(`"NA"`), nil
	}
	return []byte(strconv.Itoa(int(s))), nil
}

func (s *Score) UnmarshalJSON(data []byte) error {
	if string(data) == `"NA"` {
		*s = ScoreNA
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil || n < 0 || n > 3 {
		return fmt.Errorf("invalid score %s", data)
	}
	*s = Score(n)
	return nil
}

// AnswerSet maps question ids to scores for one subject. Partial completion
// is normal; unanswered questions are simply absent.
type AnswerSet map[string]Score

// PillarAverage is the derived per-pillar result inside a snapshot.
type PillarAverage struct {
	PillarCode    string  `json:"pillarCode"`
	PillarName    string  `json:"pillarName"`
	AverageScore  float64 `json:"averageScore"`
	AnsweredCount int     `json:"answeredCount"`
	QuestionCount int     `json:"questionCount"`
}

// Snapshot is one immutable, timestamped assessment record. The JSON field
// names are a persistence contract shared with prior exports and must not
// change.
type Snapshot struct {
	Token            string            `json:"token"`
	OrganisationName string            `json:"organisationName"`
	Country          string            `json:"country"`
	ContactEmail     string            `json:"contactEmail"`
	TimestampISO     string            `json:"timestampISO"`
	TotalScore24     float64           `json:"totalScore24"`
	Band             string            `json:"band"`
	PillarAverages   []PillarAverage   `json:"pillarAverages"`
	PillarNotes      map[string]string `json:"pillarNotes"`
	RawAnswers       AnswerSet         `json:"rawAnswers"`
}

// Profile carries the subject details captured before an assessment.
type Profile struct {
	OrganisationName string `json:"organisationName"`
	Country          string `json:"country"`
	ContactEmail     string `json:"contactEmail"`
}

// DefaultToken groups snapshots of subjects that never supplied a token.
const DefaultToken = "default"

// nowFunc is swapped in tests that need a fixed clock.
var nowFunc = time.Now

type ErrorCode string

const (
	ErrorInvalid      ErrorCode = "invalid"
	ErrorNotFound     ErrorCode = "not_found"
	ErrorUnauthorized ErrorCode = "unauthorized"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewInvalidError(msg string) error  { return &ServiceError{Code: ErrorInvalid, Message: msg} }
func NewNotFoundError(msg string) error { return &ServiceError{Code: ErrorNotFound, Message: msg} }
func NewUnauthorizedError(msg string) error {
	return &ServiceError{Code: ErrorUnauthorized, Message: msg}
}

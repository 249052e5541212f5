package data

type Label string

const (
	LabelNone Label = ""
	Benign    Label = "BENIGN"
	Malignant Label = "MALIGNANT"
)

type SeverityClass string

const (
	SeverityNone SeverityClass = ""
	Safe         SeverityClass = "safe"
	Danger       SeverityClass = "danger"
)

// Verdict is the outcome shown to the user. Failed requests produce a
// Verdict holding only a Message.
type Verdict struct {
	Label         Label
	Confidence    float64
	SeverityClass SeverityClass
	Message       string
}

func (v *Verdict) HasResult() bool {
	return v != nil && v.Label != LabelNone
}

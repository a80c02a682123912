package archive

type Status string

const (
	StatusSuccess = Status("success")
	StatusPending = Status("pending")
	StatusError   = Status("error")
)

func (s Status) String() string {
	return string(s)
}

package service

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IntegrityWarning reports a cascade that stopped part way: the steps in
// Completed were applied, Failed was not, and the remaining steps were
// not attempted.  The intent stays in the log and is resumed on the next
// start.
type IntegrityWarning struct {
	Op        string
	TargetID  primitive.ObjectID
	Completed []string
	Failed    string
	Err       error
}

func (w *IntegrityWarning) Error() string {
	return fmt.Sprintf("%s %s partially applied: step %q failed after [%s]: %v",
		w.Op, w.TargetID.Hex(), w.Failed, strings.Join(w.Completed, ", "), w.Err)
}

func (w *IntegrityWarning) Unwrap() error { return w.Err }

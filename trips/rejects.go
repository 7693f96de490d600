package trips

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// FormatRejectLine renders one reject-log line:
// tab-separated line number, reason, and the comma-joined raw fields.
func FormatRejectLine(r *RejectRecord) string {
	return fmt.Sprintf("line=%d\treason=%s\trow=%s", r.LineNo, r.Reason, strings.Join(r.RawFields, ","))
}

// rejectInfo holds aggregated information about one reject reason.
type rejectInfo struct {
	count    int
	examples []int
}

// RejectAggregator collects reject records during a run and logs one
// consolidated summary per reason at the end, with up to three example
// line numbers each.
type RejectAggregator struct {
	rejects map[RejectReason]*rejectInfo
}

// NewRejectAggregator creates an empty aggregator.
func NewRejectAggregator() *RejectAggregator {
	return &RejectAggregator{rejects: make(map[RejectReason]*rejectInfo)}
}

// Add records one reject occurrence.
func (a *RejectAggregator) Add(r *RejectRecord) {
	info := a.rejects[r.Reason]
	if info == nil {
		info = &rejectInfo{examples: make([]int, 0, 3)}
		a.rejects[r.Reason] = info
	}
	info.count++
	if len(info.examples) < 3 {
		info.examples = append(info.examples, r.LineNo)
	}
}

// Total returns the number of rejects recorded.
func (a *RejectAggregator) Total() int {
	n := 0
	for _, info := range a.rejects {
		n += info.count
	}
	return n
}

// LogAll outputs the collected reject summaries in a fixed reason
// order so repeated runs log identically.
func (a *RejectAggregator) LogAll(log logrus.FieldLogger) {
	if len(a.rejects) == 0 {
		return
	}

	reasons := make([]string, 0, len(a.rejects))
	for reason := range a.rejects {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)

	for _, reason := range reasons {
		info := a.rejects[RejectReason(reason)]
		log.WithFields(logrus.Fields{
			"reason":        reason,
			"count":         info.count,
			"example_lines": info.examples,
		}).Warnf("rejected %d row(s): %s. Rows dropped from all downstream processing", info.count, describeReason(RejectReason(reason)))
	}
}

func describeReason(reason RejectReason) string {
	switch reason {
	case RejectEmptyDeviceID:
		return "device identifier blank after trimming"
	case RejectNonNumericCoords:
		return "latitude or longitude did not parse as a number"
	case RejectCoordsOutOfRange:
		return "latitude outside [-90,90] or longitude outside [-180,180]"
	case RejectInvalidTimestamp:
		return "timestamp did not parse as an absolute instant"
	default:
		return "unknown issue"
	}
}

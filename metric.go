package sender

import (
	"bytes"
	"strings"
	"time"

	protocol "github.com/influxdata/line-protocol"
)

// SimpleMetric is a ready-to-use implementation of protocol.Metric for
// callers that don't already carry an Influx-specific one. Combined with
// EncodeLines it produces the newline-joined text that Send and SendAsync
// accept.
type SimpleMetric struct {
	name      string
	tags      []*protocol.Tag
	fields    []*protocol.Field
	timestamp time.Time
}

func NewSimpleMetric(name string) *SimpleMetric {
	return &SimpleMetric{name: name}
}

func (m *SimpleMetric) Name() string {
	return m.name
}

// Time returns the metric's timestamp, defaulting to now when none was set.
func (m *SimpleMetric) Time() time.Time {
	if m.timestamp.IsZero() {
		return time.Now()
	}
	return m.timestamp
}

func (m *SimpleMetric) SetTime(t time.Time) {
	m.timestamp = t
}

func (m *SimpleMetric) TagList() []*protocol.Tag {
	return m.tags
}

func (m *SimpleMetric) FieldList() []*protocol.Field {
	return m.fields
}

func (m *SimpleMetric) AddTag(key, value string) {
	m.tags = append(m.tags, &protocol.Tag{Key: key, Value: value})
}

func (m *SimpleMetric) AddField(key string, value interface{}) {
	m.fields = append(m.fields, &protocol.Field{Key: key, Value: value})
}

// EncodeLines renders the given metrics as Influx line protocol text joined
// by newlines, with no trailing newline, ready to pass to Client.Send or
// Client.SendAsync as one batch.
func EncodeLines(metrics ...protocol.Metric) (string, error) {
	var buf bytes.Buffer
	encoder := protocol.NewEncoder(&buf)
	for _, m := range metrics {
		if _, err := encoder.Encode(m); err != nil {
			return "", err
		}
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

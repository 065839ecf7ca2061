package adif

import "time"

// NewEmptyQSO returns a blank record for a contact logged at now. The date
// and time are taken in UTC.
func NewEmptyQSO(now time.Time) Record {
	now = now.UTC()
	return NewRecord(
		"CALL", "",
		"QSO_DATE", now.Format("20060102"),
		"TIME_ON", now.Format("150405"),
		"TIME_OFF", "",
		"BAND", "",
		"FREQ", "",
		"MODE", "",
		"RST_SENT", "59",
		"RST_RCVD", "59",
		"NAME", "",
		"QTH", "",
		"GRIDSQUARE", "",
		"COMMENT", "",
		"QSL_SENT", "N",
		"QSL_RCVD", "N",
	)
}

// EmptyQSO returns a blank record stamped with the current time
func EmptyQSO() Record {
	return NewEmptyQSO(time.Now())
}

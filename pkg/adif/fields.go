package adif

import (
	"sort"
	"strings"
)

// FieldType is an ADIF data type indicator
type FieldType string

const (
	TypeDate       FieldType = "D" // YYYYMMDD
	TypeTime       FieldType = "T" // HHMMSS
	TypeNumber     FieldType = "N"
	TypeGridSquare FieldType = "G" // Maidenhead locator
	TypeEnum       FieldType = "E"
	TypeString     FieldType = "S"
	TypeMultiline  FieldType = "M"
)

// FieldSpec describes a well-known ADIF field
type FieldSpec struct {
	Name        string    `json:"name" yaml:"name"`
	Type        FieldType `json:"type" yaml:"type"`
	Description string    `json:"description" yaml:"description"`
}

// fields is the fixed schema. It is built once and only read afterwards.
var fields = map[string]FieldSpec{
	// Core QSO fields
	"CALL":     {Type: TypeString, Description: "Contacted station callsign"},
	"QSO_DATE": {Type: TypeDate, Description: "QSO date (YYYYMMDD)"},
	"TIME_ON":  {Type: TypeTime, Description: "QSO start time (HHMMSS)"},
	"TIME_OFF": {Type: TypeTime, Description: "QSO end time (HHMMSS)"},
	"BAND":     {Type: TypeEnum, Description: "QSO band"},
	"FREQ":     {Type: TypeNumber, Description: "QSO frequency in MHz"},
	"MODE":     {Type: TypeEnum, Description: "QSO mode"},
	"SUBMODE":  {Type: TypeEnum, Description: "QSO submode"},
	"RST_SENT": {Type: TypeString, Description: "Signal report sent"},
	"RST_RCVD": {Type: TypeString, Description: "Signal report received"},

	// Station information
	"STATION_CALLSIGN": {Type: TypeString, Description: "Logging station callsign"},
	"MY_GRIDSQUARE":    {Type: TypeGridSquare, Description: "Logging station gridsquare"},
	"GRIDSQUARE":       {Type: TypeGridSquare, Description: "Contacted station gridsquare"},
	"MY_CITY":          {Type: TypeString, Description: "Logging station city"},
	"MY_STATE":         {Type: TypeEnum, Description: "Logging station state"},
	"MY_COUNTRY":       {Type: TypeEnum, Description: "Logging station country"},
	"QTH":              {Type: TypeString, Description: "Contacted station city"},
	"STATE":            {Type: TypeEnum, Description: "Contacted station state"},
	"COUNTRY":          {Type: TypeEnum, Description: "Contacted station country"},
	"DXCC":             {Type: TypeNumber, Description: "DXCC entity code"},

	// Contest and awards
	"CONTEST_ID": {Type: TypeString, Description: "Contest identifier"},
	"STX":        {Type: TypeNumber, Description: "Contest exchange sent"},
	"SRX":        {Type: TypeNumber, Description: "Contest exchange received"},
	"STX_STRING": {Type: TypeString, Description: "Contest exchange sent (string)"},
	"SRX_STRING": {Type: TypeString, Description: "Contest exchange received (string)"},

	// QSL and confirmation
	"QSL_SENT":      {Type: TypeEnum, Description: "QSL sent status"},
	"QSL_RCVD":      {Type: TypeEnum, Description: "QSL received status"},
	"QSL_SENT_VIA":  {Type: TypeEnum, Description: "QSL sent via"},
	"QSL_RCVD_VIA":  {Type: TypeEnum, Description: "QSL received via"},
	"QSLMSG":        {Type: TypeMultiline, Description: "QSL message"},
	"LOTW_QSL_SENT": {Type: TypeEnum, Description: "LoTW QSL sent status"},
	"LOTW_QSL_RCVD": {Type: TypeEnum, Description: "LoTW QSL received status"},
	"EQSL_QSL_SENT": {Type: TypeEnum, Description: "eQSL sent status"},
	"EQSL_QSL_RCVD": {Type: TypeEnum, Description: "eQSL received status"},

	// Additional fields
	"NAME":           {Type: TypeString, Description: "Contacted operator name"},
	"EMAIL":          {Type: TypeString, Description: "Contacted operator email"},
	"COMMENT":        {Type: TypeString, Description: "QSO comment"},
	"NOTES":          {Type: TypeMultiline, Description: "QSO notes"},
	"POWER":          {Type: TypeNumber, Description: "Power in watts"},
	"OPERATOR":       {Type: TypeString, Description: "Logging operator callsign"},
	"OWNER_CALLSIGN": {Type: TypeString, Description: "Owner callsign"},
}

func init() {
	for name, spec := range fields {
		spec.Name = name
		fields[name] = spec
	}
}

// Lookup returns the schema entry for name, matched case-insensitively
func Lookup(name string) (FieldSpec, bool) {
	spec, ok := fields[strings.ToUpper(name)]
	return spec, ok
}

// Fields returns every schema entry sorted by name
func Fields() []FieldSpec {
	specs := make([]FieldSpec, 0, len(fields))
	for _, spec := range fields {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Name < specs[j].Name
	})
	return specs
}

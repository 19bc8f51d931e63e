package domain

// Placeholder messages.
const (
	MsgNoCityData         = "City data not available in dataset"
	MsgNoMeasureData      = "Measure data not available"
	MsgNoValueData        = "AQI data not available"
	MsgNoDateData         = "Date data not available in dataset"
	MsgNotEnoughMeasures  = "Not enough measures for correlation analysis"
	MsgNotEnoughTrendData = "Not enough data for trend analysis"
)

var missingFieldMessages = map[Field]string{
	FieldPlace:     MsgNoCityData,
	FieldMeasure:   MsgNoMeasureData,
	FieldValue:     MsgNoValueData,
	FieldStartDate: MsgNoDateData,
}

// Guard returns a placeholder naming the first of required that the schema
// lacks, or nil when all are present.
func Guard(s Schema, required ...Field) *Placeholder {
	f, missing := s.Missing(required...)
	if !missing {
		return nil
	}
	return &Placeholder{Message: missingFieldMessages[f]}
}

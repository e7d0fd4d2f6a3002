package metrics

const Namespace = "item_service"

const (
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelMethod    = "method"
	LabelRoute     = "route"
	LabelStatus    = "status"
)

const OutcomeOK = "ok"

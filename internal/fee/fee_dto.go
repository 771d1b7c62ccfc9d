package fee

type FeeItemRequest struct {
	ClassID    string `json:"class_id" binding:"omitempty,uuid"`
	Name       string `json:"name" binding:"required,max=150"`
	BaseAmount int64  `json:"base_amount" binding:"gte=0"`
	Discount   int64  `json:"discount"`
	IsExempt   bool   `json:"is_exempt"`
	Cycle      string `json:"cycle" binding:"required,fee_cycle"`
}

type FeeItemResponse struct {
	ID           string  `json:"id"`
	ClassID      *string `json:"class_id"`
	ClassName    string  `json:"class_name,omitempty"`
	Name         string  `json:"name"`
	BaseAmount   int64   `json:"base_amount"`
	Discount     int64   `json:"discount"`
	IsExempt     bool    `json:"is_exempt"`
	Cycle        string  `json:"cycle"`
	FinalAmount  int64   `json:"final_amount"`
	AnnualAmount int64   `json:"annual_amount"`
}

type RouteRequest struct {
	Name       string `json:"name" binding:"required,max=150"`
	BaseAmount int64  `json:"base_amount" binding:"gte=0"`
	Cycle      string `json:"cycle" binding:"required,fee_cycle"`
}

type RouteResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	BaseAmount int64  `json:"base_amount"`
	Cycle      string `json:"cycle"`
}

type AssignmentRequest struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
	RouteID   string `json:"route_id" binding:"required,uuid"`
	Discount  int64  `json:"discount"`
	IsExempt  bool   `json:"is_exempt"`
}

type UpdateAssignmentRequest struct {
	RouteID  string `json:"route_id" binding:"required,uuid"`
	Discount int64  `json:"discount"`
	IsExempt bool   `json:"is_exempt"`
}

type AssignmentResponse struct {
	ID          string `json:"id"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name,omitempty"`
	RouteID     string `json:"route_id"`
	RouteName   string `json:"route_name,omitempty"`
	BaseAmount  int64  `json:"base_amount"`
	Discount    int64  `json:"discount"`
	IsExempt    bool   `json:"is_exempt"`
	Cycle       string `json:"cycle"`
	FinalAmount int64  `json:"final_amount"`
}

type PaymentRequest struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	PaidOn    string `json:"paid_on"`
	Method    string `json:"method" binding:"omitempty,oneof=cash bank_transfer card cheque online"`
	Reference string `json:"reference" binding:"max=100"`
	Note      string `json:"note" binding:"max=500"`
}

type PaymentResponse struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	Amount    int64  `json:"amount"`
	PaidOn    string `json:"paid_on"`
	Method    string `json:"method"`
	Reference string `json:"reference,omitempty"`
	Note      string `json:"note,omitempty"`
}

const (
	SourceClassFee  = "class_fee"
	SourceCustomFee = "custom_fee"
	SourceTransport = "transport"
)

type SummaryLine struct {
	Source       string `json:"source"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	BaseAmount   int64  `json:"base_amount"`
	Discount     int64  `json:"discount"`
	IsExempt     bool   `json:"is_exempt"`
	Cycle        string `json:"cycle"`
	FinalAmount  int64  `json:"final_amount"`
	AnnualAmount int64  `json:"annual_amount"`
}

type StudentFeeSummary struct {
	StudentID     string        `json:"student_id"`
	StudentName   string        `json:"student_name"`
	Year          int           `json:"year"`
	Items         []SummaryLine `json:"items"`
	TotalBase     int64         `json:"total_base"`
	TotalDiscount int64         `json:"total_discount"`
	TotalFinal    int64         `json:"total_final"`
	AnnualTotal   int64         `json:"annual_total"`
	Paid          int64         `json:"paid"`
	Outstanding   int64         `json:"outstanding"`
}

package vo

type NotificationParams struct {
	Subject    string   `json:"subject" validate:"required"`
	Message    string   `json:"message" validate:"required"`
	Receivers  []string `json:"receivers" validate:"required,min=1,dive,email"`
	IsHTML     bool     `json:"is_html"`
	SenderMask string   `json:"sender_mask"`
}

package audit

import "fmt"

// RegisterEvent represents an account registration audit event
type RegisterEvent struct {
	Email        string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e RegisterEvent) MessageID() string {
	return "register"
}

func (e RegisterEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s registered and awaits approval", e.Email)
	}
	msg := fmt.Sprintf("%s failed to register", e.Email)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RegisterEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RegisterEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RegisterEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "register",
			"result":    result,
		},
	}
}

// AuthenticateEvent represents a login audit event
type AuthenticateEvent struct {
	Email        string
	AccountID    int64
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e AuthenticateEvent) MessageID() string {
	return "authn"
}

func (e AuthenticateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully authenticated", e.Email)
	}
	msg := fmt.Sprintf("%s failed to authenticate", e.Email)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e AuthenticateEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e AuthenticateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AuthenticateEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
	if e.AccountID != 0 {
		sd[SDIDAuth]["account"] = fmt.Sprintf("%d", e.AccountID)
	}
	return sd
}

// ApproveEvent represents a reporter approval audit event
type ApproveEvent struct {
	AdminID      int64
	ReporterID   int64
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e ApproveEvent) MessageID() string {
	return "approve"
}

func (e ApproveEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("admin %d approved reporter %d and issued a license key", e.AdminID, e.ReporterID)
	}
	msg := fmt.Sprintf("admin %d failed to approve reporter %d", e.AdminID, e.ReporterID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ApproveEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e ApproveEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ApproveEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"admin": fmt.Sprintf("%d", e.AdminID),
		},
		SDIDSubject: {
			"reporter": fmt.Sprintf("%d", e.ReporterID),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "approve",
			"result":    result,
		},
	}
}

// RevokeEvent represents a license revocation audit event
type RevokeEvent struct {
	AdminID      int64
	ReporterID   int64
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e RevokeEvent) MessageID() string {
	return "revoke"
}

func (e RevokeEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("admin %d revoked the license of reporter %d", e.AdminID, e.ReporterID)
	}
	msg := fmt.Sprintf("admin %d failed to revoke the license of reporter %d", e.AdminID, e.ReporterID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RevokeEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e RevokeEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RevokeEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"admin": fmt.Sprintf("%d", e.AdminID),
		},
		SDIDSubject: {
			"reporter": fmt.Sprintf("%d", e.ReporterID),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "revoke",
			"result":    result,
		},
	}
}

// PublishEvent represents an article publication audit event
type PublishEvent struct {
	ReporterID   int64
	ArticleID    int64
	Title        string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e PublishEvent) MessageID() string {
	return "publish"
}

func (e PublishEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("reporter %d published article %d", e.ReporterID, e.ArticleID)
	}
	msg := fmt.Sprintf("reporter %d failed to publish an article", e.ReporterID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e PublishEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e PublishEvent) Facility() int {
	return FacilityAuth
}

func (e PublishEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"reporter": fmt.Sprintf("%d", e.ReporterID),
		},
		SDIDSubject: {
			"title": e.Title,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "publish",
			"result":    result,
		},
	}
	if e.ArticleID != 0 {
		sd[SDIDSubject]["article"] = fmt.Sprintf("%d", e.ArticleID)
	}
	return sd
}

// DeleteEvent represents an article deletion audit event
type DeleteEvent struct {
	AccountID    int64
	ArticleID    int64
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e DeleteEvent) MessageID() string {
	return "delete"
}

func (e DeleteEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("account %d deleted article %d", e.AccountID, e.ArticleID)
	}
	msg := fmt.Sprintf("account %d failed to delete article %d", e.AccountID, e.ArticleID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e DeleteEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e DeleteEvent) Facility() int {
	return FacilityAuth
}

func (e DeleteEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"account": fmt.Sprintf("%d", e.AccountID),
		},
		SDIDSubject: {
			"article": fmt.Sprintf("%d", e.ArticleID),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "delete",
			"result":    result,
		},
	}
}

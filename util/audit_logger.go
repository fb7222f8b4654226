package util

import (
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hamyaran/hamyar-api/model"
)

// AuditEventType represents different types of audit events.
type AuditEventType string

const (
	EventSignInSuccess     AuditEventType = "SIGN_IN_SUCCESS"
	EventSignInFailure     AuditEventType = "SIGN_IN_FAILURE"
	EventTokenRefresh      AuditEventType = "TOKEN_REFRESH"
	EventAccountProvision  AuditEventType = "ACCOUNT_PROVISIONED"
	EventRateLimitExceeded AuditEventType = "RATE_LIMIT_EXCEEDED"
	EventEndpointCall      AuditEventType = "ENDPOINT_CALL"
)

// AuditEvent represents an audit event to be logged.
type AuditEvent struct {
	EventType AuditEventType
	AccountID string
	Email     string
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var (
	appLogger *logrus.Logger
	auditDB   *gorm.DB
)

func init() {
	appLogger = logrus.New()
	appLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Log returns the shared application logger.
func Log() *logrus.Logger {
	return appLogger
}

// SetAuditLoggerDB sets the gorm DB instance used to persist audit events.
// Call during application startup after DB initialization.
func SetAuditLoggerDB(db *gorm.DB) {
	auditDB = db
}

// sanitizeLogValue removes newlines and other characters that could break log parsing.
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogAuditEvent writes the event to the structured log and, when a DB is
// configured, persists it to the audit_logs table. Persistence is
// best-effort and never fails the calling operation.
func LogAuditEvent(event AuditEvent) {
	fields := logrus.Fields{
		"event":      sanitizeLogValue(string(event.EventType)),
		"account_id": sanitizeLogValue(event.AccountID),
		"ip":         sanitizeLogValue(event.IP),
	}
	if event.Email != "" {
		fields["email"] = sanitizeLogValue(event.Email)
	}
	appLogger.WithFields(fields).Info(sanitizeLogValue(event.Message))

	if auditDB == nil {
		return
	}

	var details datatypes.JSON
	if len(event.Details) > 0 {
		if raw, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(raw)
		}
	}

	entry := model.AuditLog{
		EventType: string(event.EventType),
		AccountID: event.AccountID,
		Email:     event.Email,
		IP:        event.IP,
		UserAgent: event.UserAgent,
		Message:   event.Message,
		Details:   details,
	}
	if err := auditDB.Create(&entry).Error; err != nil {
		appLogger.WithError(err).Warn("failed to persist audit event")
	}
}

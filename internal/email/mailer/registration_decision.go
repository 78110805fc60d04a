// internal/email/mailer/registration_decision.go
package mailer

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/ukmhub/internal/email"
	"github.com/dangerclosesec/ukmhub/internal/model"
)

const fromName = "Admin UKM"

// RegistrationDecisionData contains data for the registration_decision template
type RegistrationDecisionData struct {
	Nama     string
	Accepted bool
	Type     model.RegistrationType
	UKMNama  string
	WAGroup  string
}

// SendRegistrationDecision tells an applicant whether their registration
// was accepted.
func SendRegistrationDecision(ctx context.Context, s *email.Service, to string, data RegistrationDecisionData) error {
	subject := fmt.Sprintf("Pendaftaran %s ditolak", data.UKMNama)
	if data.Accepted {
		subject = fmt.Sprintf("Pendaftaran %s diterima", data.UKMNama)
	}

	return s.SendEmail(ctx, email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      subject,
		TemplateName: "registration_decision",
		TemplateData: data,
	})
}

// DecisionNotifier sends registration decisions by email.
type DecisionNotifier struct {
	emails *email.Service
}

func NewDecisionNotifier(emails *email.Service) *DecisionNotifier {
	return &DecisionNotifier{emails: emails}
}

func (n *DecisionNotifier) NotifyDecision(ctx context.Context, user *model.User, ukm *model.UKM, reg *model.Registration) error {
	if user.Email == nil || *user.Email == "" {
		return nil
	}

	data := RegistrationDecisionData{
		Nama:     user.Nama,
		Accepted: reg.Status == model.StatusAccepted,
		Type:     reg.Type,
		UKMNama:  ukm.Nama,
	}
	if data.Accepted {
		data.WAGroup = ukm.WAGroup
	}

	return SendRegistrationDecision(ctx, n.emails, *user.Email, data)
}

package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Dispatcher implements ports.Notifier: members get email, the admin
// gets email plus the Telegram channel. Every send is best-effort. The
// durable mutation has already committed by the time a message goes
// out, so failures are logged and swallowed.
type Dispatcher struct {
	mailer     *Mailer
	telegram   *TelegramNotifier
	adminEmail string
	logger     logger.Logger
}

func NewDispatcher(mailer *Mailer, telegram *TelegramNotifier, adminEmail string, logger logger.Logger) *Dispatcher {
	return &Dispatcher{
		mailer:     mailer,
		telegram:   telegram,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

func (d *Dispatcher) NotifyRegistrationConfirmed(ctx context.Context, user *domain.User, title string, starts time.Time, location string) {
	if ctx.Err() != nil {
		return
	}

	subject := fmt.Sprintf("Confirmation d'inscription: %s", title)
	body := fmt.Sprintf(
		"Bonjour %s,\n\nVous êtes bien inscrit à \"%s\" qui se tiendra le %s à %s.\n\nMerci de votre participation !\n\nL'équipe Bayy Sa Waar",
		user.FirstName, title, starts.Format("02/01/2006"), location,
	)
	d.mail(user.Email, subject, body)
}

func (d *Dispatcher) NotifyAdminNewRegistration(ctx context.Context, user *domain.User, title string) {
	if ctx.Err() != nil {
		return
	}

	subject := fmt.Sprintf("Nouvelle inscription: %s", title)
	body := fmt.Sprintf("%s (%s) s'est inscrit à \"%s\".", user.FullName(), user.Email, title)
	d.mail(d.adminEmail, subject, body)
	d.telegram.Notify(fmt.Sprintf("*Nouvelle inscription*\n%s - %s", user.FullName(), title))
}

func (d *Dispatcher) NotifyEnrollmentDecision(ctx context.Context, e *domain.Enrollment) {
	if ctx.Err() != nil {
		return
	}

	var subject, body string
	switch e.Status {
	case domain.EnrollmentStatusApproved:
		subject = "Votre adhésion a été approuvée"
		body = fmt.Sprintf("Bonjour %s,\n\nVotre demande d'adhésion a été approuvée. Bienvenue parmi nous !\n\nL'équipe Bayy Sa Waar", e.FirstName)
	case domain.EnrollmentStatusRejected:
		subject = "Votre demande d'adhésion"
		body = fmt.Sprintf("Bonjour %s,\n\nVotre demande d'adhésion n'a pas pu être acceptée. N'hésitez pas à nous contacter pour en savoir plus.\n\nL'équipe Bayy Sa Waar", e.FirstName)
	default:
		return
	}
	d.mail(e.Email, subject, body)
}

func (d *Dispatcher) NotifyContactReceived(ctx context.Context, c *domain.Contact) {
	if ctx.Err() != nil {
		return
	}

	subject := fmt.Sprintf("Nouveau ticket: %s", c.TicketID)
	body := fmt.Sprintf(
		"Nouveau message de contact reçu:\n\nTicket: %s\nNom: %s\nEmail: %s\nCatégorie: %s\n\n%s",
		c.TicketID, c.Name, c.Email, c.Category, c.Message,
	)
	d.mail(d.adminEmail, subject, body)
	d.telegram.Notify(fmt.Sprintf("*Nouveau ticket* %s\n%s - %s", c.TicketID, c.Name, c.Email))
}

func (d *Dispatcher) NotifyNewsletterWelcome(ctx context.Context, email string) {
	if ctx.Err() != nil {
		return
	}

	body := "Bonjour,\n\nMerci de vous être abonné à notre newsletter ! Vous recevrez désormais nos dernières actualités.\n\nL'équipe Bayy Sa Waar"
	d.mail(email, "Bienvenue à la newsletter Bayy Sa Waar", body)
}

func (d *Dispatcher) mail(to, subject, body string) {
	if to == "" {
		d.logger.Debug("mail skipped (no recipient)", logger.String("subject", subject))
		return
	}

	if err := d.mailer.Send(to, subject, body); err != nil {
		d.logger.Error("failed to send mail",
			logger.String("to", to),
			logger.String("subject", subject),
			logger.String("error", err.Error()),
		)
	}
}

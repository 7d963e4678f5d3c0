package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// HTML is optional; Text is the fallback body.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// WelcomeJob builds the welcome email enqueued after a successful
// registration.
func WelcomeJob(to, nombre string) EmailJob {
	return EmailJob{
		To:      to,
		Subject: "Bienvenido a la plataforma",
		Text: "Hola " + nombre + ",\n\n" +
			"Tu cuenta fue creada exitosamente. Ya puedes iniciar sesión con tu email.\n",
	}
}

package mailer

import "fmt"

// Template selection is a pure function of write type. These four fixed
// messages are the only outbound mail the system produces.

func Welcome(clientName, dashboardURL string) Email {
	return Email{
		Subject: "Welcome to Digital Agency!",
		HTML: fmt.Sprintf(
			`<p>Hi %s,</p>`+
				`<p>Thank you for choosing Digital Agency for your project needs. We're excited to work with you!</p>`+
				`<p>Your client dashboard is now ready. You can track project progress, message our team, and share files.</p>`+
				`<p><a href="%s/client-dashboard">Go to Dashboard</a></p>`+
				`<p>Best regards,<br>The Digital Agency Team</p>`,
			clientName, dashboardURL),
		Text: fmt.Sprintf(
			"Hi %s,\n\nWelcome to Digital Agency! Your client dashboard is ready. Visit %s/client-dashboard to get started.\n\nBest regards,\nThe Digital Agency Team",
			clientName, dashboardURL),
	}
}

func NewMessage(clientName, subject, sender, dashboardURL string) Email {
	return Email{
		Subject: "New Message: " + subject,
		HTML: fmt.Sprintf(
			`<p>Hi %s,</p>`+
				`<p>You have a new message from <strong>%s</strong>:</p>`+
				`<p><strong>Subject:</strong> %s</p>`+
				`<p><a href="%s/client-dashboard">View Message</a></p>`+
				`<p>Best regards,<br>The Digital Agency Team</p>`,
			clientName, sender, subject, dashboardURL),
		Text: fmt.Sprintf(
			"Hi %s,\n\nYou have a new message from %s.\nSubject: %s\n\nView it at: %s/client-dashboard\n\nBest regards,\nThe Digital Agency Team",
			clientName, sender, subject, dashboardURL),
	}
}

func ProjectUpdate(clientName, projectTitle, update, dashboardURL string) Email {
	return Email{
		Subject: "Project Update: " + projectTitle,
		HTML: fmt.Sprintf(
			`<p>Hi %s,</p>`+
				`<p>There's an update on your project: <strong>%s</strong></p>`+
				`<p>%s</p>`+
				`<p><a href="%s/client-dashboard">View Project Details</a></p>`+
				`<p>Best regards,<br>The Digital Agency Team</p>`,
			clientName, projectTitle, update, dashboardURL),
		Text: fmt.Sprintf(
			"Hi %s,\n\nProject Update: %s\n\n%s\n\nView details at: %s/client-dashboard\n\nBest regards,\nThe Digital Agency Team",
			clientName, projectTitle, update, dashboardURL),
	}
}

func FileUploaded(clientName, fileName, uploadedBy, dashboardURL string) Email {
	return Email{
		Subject: "New File Uploaded: " + fileName,
		HTML: fmt.Sprintf(
			`<p>Hi %s,</p>`+
				`<p><strong>%s</strong> has uploaded a new file:</p>`+
				`<p><strong>File:</strong> %s</p>`+
				`<p><a href="%s/client-dashboard">Download File</a></p>`+
				`<p>Best regards,<br>The Digital Agency Team</p>`,
			clientName, uploadedBy, fileName, dashboardURL),
		Text: fmt.Sprintf(
			"Hi %s,\n\n%s has uploaded a new file: %s\n\nDownload it at: %s/client-dashboard\n\nBest regards,\nThe Digital Agency Team",
			clientName, uploadedBy, fileName, dashboardURL),
	}
}

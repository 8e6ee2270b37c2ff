package email

import "html/template"

// Shared layout: keep the markup minimal so templates render the same in
// every mail client.
const layoutHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #4f46e5; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
        .button { display: inline-block; background: #4f46e5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; }
    </style>
</head>
<body>
    <div class="container">`

const layoutFoot = `
        <div class="footer">
            <p>EmpleaWorks</p>
        </div>
    </div>
</body>
</html>`

var applicationCandidateMessages = map[string]localizedMessage{
	"en": {
		subject: "Your application was sent",
		tmpl: template.Must(template.New("application_candidate_en").Parse(layoutHead + `
        <div class="header"><h1>Application sent</h1></div>
        <div class="content">
            <p>Hi {{.CandidateName}},</p>
            <p>Your application for <strong>{{.OfferName}}</strong> at {{.CompanyName}} has been registered.</p>
            <p>The company has received your CV and your contact details, and will reach out if your profile matches the position.</p>
        </div>` + layoutFoot)),
	},
	"es": {
		subject: "Tu candidatura ha sido enviada",
		tmpl: template.Must(template.New("application_candidate_es").Parse(layoutHead + `
        <div class="header"><h1>Candidatura enviada</h1></div>
        <div class="content">
            <p>Hola {{.CandidateName}},</p>
            <p>Tu candidatura para <strong>{{.OfferName}}</strong> en {{.CompanyName}} ha sido registrada.</p>
            <p>La empresa ha recibido tu CV y tus datos de contacto, y se pondrá en contacto contigo si tu perfil encaja con el puesto.</p>
        </div>` + layoutFoot)),
	},
}

var applicationCompanyMessages = map[string]localizedMessage{
	"en": {
		subject: "New application received",
		tmpl: template.Must(template.New("application_company_en").Parse(layoutHead + `
        <div class="header"><h1>New application</h1></div>
        <div class="content">
            <p>Hello {{.CompanyName}},</p>
            <p><strong>{{.CandidateName}}</strong> has applied to your offer <strong>{{.OfferName}}</strong>.</p>
            <p>Contact details: {{.CandidateEmail}}{{if .CandidatePhone}} &middot; {{.CandidatePhone}}{{end}}</p>
            <p>You can review their CV from your offers dashboard.</p>
        </div>` + layoutFoot)),
	},
	"es": {
		subject: "Nueva candidatura recibida",
		tmpl: template.Must(template.New("application_company_es").Parse(layoutHead + `
        <div class="header"><h1>Nueva candidatura</h1></div>
        <div class="content">
            <p>Hola {{.CompanyName}},</p>
            <p><strong>{{.CandidateName}}</strong> se ha inscrito en tu oferta <strong>{{.OfferName}}</strong>.</p>
            <p>Datos de contacto: {{.CandidateEmail}}{{if .CandidatePhone}} &middot; {{.CandidatePhone}}{{end}}</p>
            <p>Puedes consultar su CV desde el panel de tus ofertas.</p>
        </div>` + layoutFoot)),
	},
}

var passwordResetMessages = map[string]localizedMessage{
	"en": {
		subject: "Reset your password",
		tmpl: template.Must(template.New("password_reset_en").Parse(layoutHead + `
        <div class="header"><h1>Password reset</h1></div>
        <div class="content">
            <p>Hi {{.Name}},</p>
            <p>We received a request to reset your password. The link below is valid for one hour.</p>
            <p><a class="button" href="{{.ResetURL}}">Reset password</a></p>
            <p>If you did not request this, you can safely ignore this email.</p>
        </div>` + layoutFoot)),
	},
	"es": {
		subject: "Restablece tu contraseña",
		tmpl: template.Must(template.New("password_reset_es").Parse(layoutHead + `
        <div class="header"><h1>Restablecer contraseña</h1></div>
        <div class="content">
            <p>Hola {{.Name}},</p>
            <p>Hemos recibido una solicitud para restablecer tu contraseña. El enlace es válido durante una hora.</p>
            <p><a class="button" href="{{.ResetURL}}">Restablecer contraseña</a></p>
            <p>Si no has solicitado este cambio, puedes ignorar este correo.</p>
        </div>` + layoutFoot)),
	},
}

package mailer

import (
	"bytes"
	"html/template"

	"wedding-backend/models"
)

// ReminderData parameterizes the reminder email body.
type ReminderData struct {
	FirstName            string
	AttendanceType       string
	IsInc                bool
	DaysAway             int
	DaysLabel            string
	WeddingDateFormatted string
}

// ShowChurch reports whether the church ceremony section applies.
func (d ReminderData) ShowChurch() bool {
	return d.AttendanceType == models.AttendanceChurch || d.AttendanceType == models.AttendanceBoth
}

// ShowReception reports whether the reception section applies.
func (d ReminderData) ShowReception() bool {
	return d.AttendanceType == models.AttendanceReception || d.AttendanceType == models.AttendanceBoth
}

// RenderReminder renders the reminder email HTML for one recipient.
func RenderReminder(data ReminderData) (string, error) {
	var buf bytes.Buffer
	if err := reminderTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var reminderTmpl = template.Must(template.New("reminder").Parse(reminderHTML))

const reminderHTML = `<!DOCTYPE html>
<html>
  <body style="margin:0;padding:0;background-color:#faf7f2;font-family:Georgia,serif;color:#4a2c2a;">
    <div style="max-width:600px;margin:0 auto;padding:32px 24px;">
      <h1 style="text-align:center;font-size:26px;">Our wedding is {{.DaysLabel}}!</h1>

      <p>Dear {{.FirstName}},</p>
      <p>
        We are so excited to celebrate our special day with you. This is a
        friendly reminder that our wedding is coming up on
        <strong>{{.WeddingDateFormatted}}</strong> &mdash; we can't wait to see
        you there!
      </p>

      {{if .ShowChurch}}
      <h2 style="font-size:20px;border-bottom:1px solid #d9cbb8;padding-bottom:4px;">Church Ceremony</h2>
      <p>
        <strong>Venue:</strong> Iglesia Ni Cristo &ndash; Locale of Pasay<br>
        <strong>Location:</strong> Pasay City, Metro Manila<br>
        <strong>Time:</strong> 2:15 PM
      </p>
      <p>
        Please arrive 15&ndash;20 minutes early to be seated before the
        ceremony begins.
      </p>
      {{if not .IsInc}}
      <p>
        As our guest, we kindly ask you to observe the following during the
        worship service:
      </p>
      <p>&bull; Men are seated on the left side of the aisle; women on the right side.</p>
      <p>&bull; Remain seated quietly and avoid unnecessary movement during worship.</p>
      <p>&bull; Set your mobile phone to silent. Photos and videos inside the church during the worship service are not allowed.</p>
      <p>&bull; Respect the prayer by remaining quiet while members respond with &quot;Yes&quot; or &quot;Amen&quot; as led by the minister.</p>
      <p>
        These practices are part of the worship tradition. Your respectful
        presence is appreciated.
      </p>
      {{end}}
      {{end}}

      {{if .ShowReception}}
      <h2 style="font-size:20px;border-bottom:1px solid #d9cbb8;padding-bottom:4px;">Reception</h2>
      <p>
        <strong>Venue:</strong> Admiral Hotel Manila &ndash; MGallery<br>
        <strong>Location:</strong> Roxas Boulevard, Manila<br>
        <strong>Time:</strong> 6:00 PM
      </p>
      <p>
        Join us for dinner, dancing, and celebration as we begin our journey
        together.
      </p>
      {{end}}

      <h2 style="font-size:20px;border-bottom:1px solid #d9cbb8;padding-bottom:4px;">Attire &mdash; Strictly Formal</h2>
      <p>
        <strong>Gentlemen:</strong> Barong Tagalog<br>
        <strong>Ladies:</strong> Long Gown / Dress
      </p>
      <p>
        Color palette: Deep Forest Green, Standard Green, Olive Green, Sand
        Beige, and Deep Brown. Please honor the dress code to ensure a cohesive
        and elegant celebration.
      </p>

      <p>
        We are looking forward to sharing this moment with you. See you soon!
      </p>
      <p>
        With love,<br>
        <strong>Jann Daniel &amp; Faith</strong>
      </p>

      <p style="font-size:12px;color:#8a7563;text-align:center;margin-top:32px;">
        You received this email because you RSVP'd to our wedding.
      </p>
    </div>
  </body>
</html>
`

package service

import (
	"bytes"
	"html/template"
	"time"
)

// Email bodies mirror the platform's transactional mail set. Everything
// user-supplied goes through html/template escaping.
const mailTemplateText = `
{{define "layout"}}
<div style="font-family: Arial, sans-serif; color: #333333; line-height: 1.5; padding: 16px;">
  <h2 style="color: #1e88e5;">{{.Title}}</h2>
  {{template "body" .}}
  <p style="margin-top: 24px; font-size: 12px; color: #777;">
    This is an automated message from ClubsHub.
  </p>
</div>
{{end}}

{{define "welcome"}}{{template "layout" .}}{{end}}
{{define "membershipApproved"}}{{template "layout" .}}{{end}}
{{define "membershipRejected"}}{{template "layout" .}}{{end}}
{{define "membershipRemoved"}}{{template "layout" .}}{{end}}
{{define "clubApproved"}}{{template "layout" .}}{{end}}
{{define "clubRemoved"}}{{template "layout" .}}{{end}}
{{define "newEvent"}}{{template "layout" .}}{{end}}
{{define "eventCancelled"}}{{template "layout" .}}{{end}}
{{define "registrationConfirmed"}}{{template "layout" .}}{{end}}
`

const mailBodiesText = `
{{define "body"}}
{{if eq .Kind "welcome"}}
  <p>Hi {{.UserName}},</p>
  <p>Welcome to <strong>ClubsHub</strong>!</p>
  <p>You can now:</p>
  <ul>
    <li>Discover and join clubs that match your interests</li>
    <li>Register for campus events</li>
    <li>Connect with fellow students and build your community</li>
  </ul>
  <p>We're excited to have you on board. Start exploring today!</p>
{{else if eq .Kind "membershipApproved"}}
  <p>Hi {{.UserName}},</p>
  <p>Great news! Your membership request for the <strong>{{.ClubName}}</strong> club has been <strong>approved</strong>.</p>
  <p>You can now participate in all club activities and receive updates.</p>
  <p>Welcome aboard!</p>
{{else if eq .Kind "membershipRejected"}}
  <p>Hi {{.UserName}},</p>
  <p>We wanted to let you know that your membership request for the <strong>{{.ClubName}}</strong> club was <strong>rejected</strong>.</p>
  <p>If you believe this was a mistake or would like more information, please contact the club administrators.</p>
  <p>Thank you for your interest.</p>
{{else if eq .Kind "membershipRemoved"}}
  <p>Hi {{.UserName}},</p>
  <p>Your membership in the club <strong>{{.ClubName}}</strong> has been removed by an administrator.</p>
  <p>If you believe this was done in error, please contact the club administrators.</p>
  <p>Thank you for your understanding.</p>
{{else if eq .Kind "clubApproved"}}
  <p>Great news!</p>
  <p>Your club <strong>{{.ClubName}}</strong> has been approved and is now live on ClubsHub.</p>
  <p><strong>Description:</strong> {{.ClubDescription}}</p>
  <p>Students can now discover and join your club. Welcome to the community!</p>
{{else if eq .Kind "clubRemoved"}}
  <p>Hi {{.UserName}},</p>
  <p>We wanted to inform you that the club <strong>{{.ClubName}}</strong> has been removed from ClubsHub.</p>
  <p>Your membership in this club has been automatically removed.</p>
  <p>Thank you for your participation, and we hope to see you in other clubs!</p>
{{else if eq .Kind "newEvent"}}
  <p>Hi {{.UserName}},</p>
  <p>A new event has been scheduled for the <strong>{{.ClubName}}</strong> club:</p>
  <ul>
    <li><strong>Event:</strong> {{.EventTitle}}</li>
    <li><strong>Date:</strong> {{.EventDate}}</li>
  </ul>
  <p>{{.EventDescription}}</p>
  <p>We hope to see you there!</p>
{{else if eq .Kind "eventCancelled"}}
  <p>Hi {{.UserName}},</p>
  <p>We regret to inform you that the event <strong>{{.EventTitle}}</strong> scheduled for <strong>{{.EventDate}}</strong> has been cancelled.</p>
  <p>We apologize for any inconvenience this may cause.</p>
  <p>Please check back for future events!</p>
{{else if eq .Kind "registrationConfirmed"}}
  <p>Hi {{.UserName}},</p>
  <p>Your registration for <strong>{{.EventTitle}}</strong> has been confirmed.</p>
  <ul>
    <li><strong>Date:</strong> {{.EventDate}}</li>
  </ul>
  <p>Thank you for registering. We look forward to your participation!</p>
{{end}}
{{end}}
`

var mailTemplates = template.Must(template.Must(
	template.New("mail").Parse(mailTemplateText)).Parse(mailBodiesText))

type mailData struct {
	Kind             string
	Title            string
	UserName         string
	ClubName         string
	ClubDescription  string
	EventTitle       string
	EventDate        string
	EventDescription string
}

func renderMail(data mailData) (string, error) {
	var buf bytes.Buffer
	if err := mailTemplates.ExecuteTemplate(&buf, data.Kind, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatEventDate(date time.Time) string {
	if date.IsZero() {
		return "TBA"
	}
	return date.Format("Monday, January 2, 2006 at 3:04 PM")
}

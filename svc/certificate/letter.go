package certificate

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LetterData is the templated part of the congratulation letter.
type LetterData struct {
	StudentName string
	CourseName  string
}

const signatureHTML = `      <p>Thank you so much!</p>

      <p>Warmest Regards,</p>

      <p style="margin: 0; line-height: 1.5;">
        Administrator<br>
        <strong>Tertiary Infotech Academy Pte. Ltd.</strong><br>
        EdTech Solutions Provider for TMS &amp; LMS<br>
        Course Development | Training | Agentic AI Automation<br>
        EdTech: <a href="https://www.tertiaryinfotech.com">www.tertiaryinfotech.com</a><br>
        PEI Courses: <a href="https://www.tertiaryinfotech.edu.sg">www.tertiaryinfotech.edu.sg</a><br>
        WSQ and IBF Courses: <a href="https://www.tertiarycourses.com.sg">www.tertiarycourses.com.sg</a><br>
        Agentic AI Automation: <a href="https://www.tertiaryrobotics.com">www.tertiaryrobotics.com</a>
      </p>

      <p style="margin: 10px 0 0 0; line-height: 1.5;">
        Address: 12 Woodlands Square #07-85/86/87 Woods Square Tower 1, Singapore 737715 <a href="https://g.page/tertiary-infotech-pte-ltd?share">Map</a><br>
        UEN: 201200696W | GST: 201200696W<br>
        PEI | WSQ ATO | IBF ATO | SAC ATO | Linux Foundation, Pearson Vue, Autodesk, Microsoft, AWS, CompTIA Training Partners | Pearson Vue, Kryterion and PSI Test Centers
      </p>
    </div>
`

const signatureText = `Thank you so much!

Warmest Regards,

Administrator
Tertiary Infotech Academy Pte. Ltd.
EdTech Solutions Provider for TMS & LMS
Course Development | Training | Agentic AI Automation

EdTech: www.tertiaryinfotech.com
PEI Courses: www.tertiaryinfotech.edu.sg
WSQ and IBF Courses: www.tertiarycourses.com.sg
Agentic AI Automation: www.tertiaryrobotics.com

Address: 12 Woodlands Square #07-85/86/87 Woods Square Tower 1, Singapore 737715
Map: https://g.page/tertiary-infotech-pte-ltd?share

UEN: 201200696W | GST: 201200696W
PEI | WSQ ATO | IBF ATO | SAC ATO | Linux Foundation, Pearson Vue, Autodesk, Microsoft, AWS, CompTIA Training Partners | Pearson Vue, Kryterion and PSI Test Centers`

// LetterHTML is the HTML congratulation letter. Names are HTML-escaped.
func LetterHTML(d LetterData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		parts := []string{
			"<div style=\"font-family: Arial, sans-serif;\">\n",
			"      <p>Dear ", templ.EscapeString(d.StudentName), ",</p>\n\n",
			"      <p>Congratulations on completing the ", templ.EscapeString(d.CourseName),
			"! Your certificate is attached.</p>\n\n",
			"      <p>We appreciate your participation and hope to see you in our future courses and learning opportunities.</p>\n\n",
			signatureHTML,
		}
		for _, p := range parts {
			if _, err := io.WriteString(w, p); err != nil {
				return err
			}
		}
		return nil
	})
}

// LetterText is the plain-text congratulation letter.
func LetterText(d LetterData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		parts := []string{
			"Dear ", d.StudentName, ",\n\n",
			"Congratulations on completing the ", d.CourseName, "! Your certificate is attached.\n\n",
			"We appreciate your participation and hope to see you in our future courses and learning opportunities.\n\n",
			signatureText,
		}
		for _, p := range parts {
			if _, err := io.WriteString(w, p); err != nil {
				return err
			}
		}
		return nil
	})
}

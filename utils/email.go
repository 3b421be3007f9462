package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// CatalogSummaryData feeds the daily summary email template.
type CatalogSummaryData struct {
	Date            string
	PackageCount    int64
	ActivePackages  int64
	ServiceCount    int64
	VenueCount      int64
	LowStockAssets  []string
	PackagesCreated int64
}

// SendCatalogSummaryEmail sends the nightly catalog summary (async).
func SendCatalogSummaryEmail(to string, data CatalogSummaryData) {
	go func() {
		tmplPath := "templates/catalog_summary.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("failed to load summary email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render summary email template: %v", err)
			return
		}

		if err := sendMail(to, "Catalog summary "+data.Date, body.String()); err != nil {
			log.Printf("failed to send summary email: %v", err)
		}
	}()
}

// SendLowStockAlertEmail notifies admins when an asset drops under its threshold (async).
func SendLowStockAlertEmail(to string, assetName string, quantity int) {
	go func() {
		body := "<p>Asset <b>" + template.HTMLEscapeString(assetName) + "</b> is low on stock: " +
			strconv.Itoa(quantity) + " remaining.</p>"
		if err := sendMail(to, "Low stock: "+assetName, body); err != nil {
			log.Printf("failed to send low stock email: %v", err)
		}
	}()
}

func sendMail(to, subject, htmlBody string) error {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	port, _ := strconv.Atoi(portStr)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(host, port, username, password)
	return d.DialAndSend(m)
}

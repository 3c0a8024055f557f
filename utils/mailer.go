package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func InitSES() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

func sendEmail(to, subject, body string) error {
	if sesClient == nil {
		return fmt.Errorf("ses client not initialized")
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	if _, err := sesClient.SendEmail(context.TODO(), input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendContactNotification forwards a contact-form submission to the site
// owner's inbox (CONTACT_EMAIL).
func SendContactNotification(fullName, email, description string) error {
	to := os.Getenv("CONTACT_EMAIL")
	if to == "" {
		to = os.Getenv("SES_EMAIL")
	}
	subject := "New contact message"
	body := fmt.Sprintf("From: %s <%s>\n\n%s", fullName, email, description)
	return sendEmail(to, subject, body)
}

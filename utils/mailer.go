package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"backend/models"

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

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	if sesClient == nil {
		return fmt.Errorf("email is not configured")
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendExpiryDigest emails a plain-text summary of expired and expiring-soon
// inventory items.
func SendExpiryDigest(to string, expired, expiring []models.FoodItem) error {
	subject := "Pantry expiry summary"
	return sendEmail(to, subject, BuildExpiryDigestBody(expired, expiring))
}

// BuildExpiryDigestBody renders the digest body. Exported so it can be
// previewed without sending.
func BuildExpiryDigestBody(expired, expiring []models.FoodItem) string {
	var b strings.Builder

	if len(expired) > 0 {
		b.WriteString("Expired items:\n")
		for _, it := range expired {
			b.WriteString(itemLine(it))
		}
		b.WriteString("\n")
	}
	if len(expiring) > 0 {
		b.WriteString("Expiring within 7 days:\n")
		for _, it := range expiring {
			b.WriteString(itemLine(it))
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func itemLine(it models.FoodItem) string {
	unit := ""
	if it.Unit != nil {
		unit = " " + *it.Unit
	}
	date := "no date"
	if it.ExpiryDate != nil {
		date = it.ExpiryDate.Format("2006-01-02")
	}
	return fmt.Sprintf("  - %s (%g%s), expires %s\n", it.Name, it.Quantity, unit, date)
}

package main

import (
	"blogapi/internal/config"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const (
	passwordResetSubject = "Reset your password"
	passwordResetHtml    = `<p>Someone asked to reset the password of your account.</p>
<p><a href="{{passwordResetUrl}}">Reset password</a></p>
<p>If it was not you, ignore this email. The link expires soon.</p>`
	passwordResetText = "Reset your password: {{passwordResetUrl}}\n" +
		"If it was not you, ignore this email. The link expires soon."
)

// Manages the SES template used for password reset emails.
//
//	go run ./cmd/aws -create
//	go run ./cmd/aws -delete
func main() {
	create := flag.Bool("create", false, "create the password reset email template")
	remove := flag.Bool("delete", false, "delete the password reset email template")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		exit(err)
	}
	svc := ses.NewFromConfig(loadAwsConfig(cfg))
	name := cfg.AwsEmailPasswordResetTemplate

	switch {
	case *create:
		CreateEmailTemplate(svc, name, passwordResetSubject, passwordResetHtml, passwordResetText)
	case *remove:
		DeleteEmailTemplate(svc, name)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func loadAwsConfig(cfg *config.Config) aws.Config {
	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(cfg.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AwsAccessKey,
				cfg.AwsSecretKey,
				"",
			),
		),
	)
	if err != nil {
		exit(err)
	}
	return awsCfg
}

func CreateEmailTemplate(
	svc *ses.Client,
	name string,
	subject string,
	htmlPart string,
	textPart string,
) {
	input := &ses.CreateTemplateInput{
		Template: &types.Template{
			SubjectPart:  &subject,
			HtmlPart:     &htmlPart,
			TextPart:     &textPart,
			TemplateName: &name,
		},
	}
	result, err := svc.CreateTemplate(context.Background(), input)
	if err != nil {
		exit(err)
	}

	fmt.Println("Success:")
	fmt.Println(result)
}

func DeleteEmailTemplate(svc *ses.Client, name string) {
	result, err := svc.DeleteTemplate(
		context.Background(),
		&ses.DeleteTemplateInput{
			TemplateName: &name,
		},
	)
	if err != nil {
		exit(err)
	}

	fmt.Println("Success:")
	fmt.Println(result)
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

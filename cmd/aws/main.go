package main

import (
	"context"
	"errors"
	"fmt"
	"onboarding/internal/config"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const usage = `usage:
  aws create-templates
  aws delete-templates
  aws send <to> <template> <json-args>`

func main() {
	if len(os.Args) < 2 {
		exit(errors.New(usage))
	}

	cfg, err := config.Load()
	if err != nil {
		exit(err)
	}
	svc := ses.NewFromConfig(loadAwsConfig(cfg))

	switch os.Args[1] {
	case "create-templates":
		for _, t := range templates(cfg) {
			CreateEmailTemplate(svc, t)
		}
	case "delete-templates":
		for _, t := range templates(cfg) {
			DeleteEmailTemplate(svc, t.name)
		}
	case "send":
		if len(os.Args) != 5 {
			exit(errors.New(usage))
		}
		SendEmailTemplate(svc, cfg.AwsEmailSender, os.Args[2], os.Args[3], os.Args[4])
	default:
		exit(errors.New(usage))
	}
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
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

func CreateEmailTemplate(svc *ses.Client, t template) {
	result, err := svc.CreateTemplate(
		context.Background(),
		&ses.CreateTemplateInput{
			Template: &types.Template{
				SubjectPart:  aws.String(t.subject),
				HtmlPart:     aws.String(t.html),
				TextPart:     aws.String(t.text),
				TemplateName: aws.String(t.name),
			},
		},
	)
	if err != nil {
		exit(err)
	}

	fmt.Println("Template created:", t.name)
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

	fmt.Println("Template deleted:", name)
	fmt.Println(result)
}

func SendEmailTemplate(svc *ses.Client, sender string, to string, name string, args string) {
	result, err := svc.SendTemplatedEmail(
		context.Background(),
		&ses.SendTemplatedEmailInput{
			Source: aws.String(sender),
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{to},
			},
			Template:     &name,
			TemplateData: &args,
		},
	)
	if err != nil {
		exit(err)
	}

	fmt.Println("Success:")
	fmt.Println(result)
}

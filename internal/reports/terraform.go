package reports

import (
	"fmt"
	"strings"

	"counsellor-backend/internal/advisor"
	"counsellor-backend/internal/shared/util"
)

// Bundle is a generated Terraform configuration split into deployable files.
type Bundle struct {
	Format       string            `json:"format"`
	Files        map[string]string `json:"files"`
	Instructions []string          `json:"instructions"`
}

// Terraform renders a ready-to-deploy Terraform bundle for the recommended
// architecture. Resource blocks are emitted per service key so the output
// tracks the recommendation exactly; sizing knobs (lambda memory/timeout,
// dynamodb billing mode) scale with the user estimate.
func Terraform(services []advisor.RecommendedService, classification advisor.Classification, estimatedUsers int) Bundle {
	projectType := string(classification.Primary)

	var resources []string
	for _, svc := range services {
		switch svc.Key {
		case advisor.KeyLambda:
			resources = append(resources, lambdaResource(estimatedUsers))
		case advisor.KeyDynamoDB:
			resources = append(resources, dynamoDBResource(estimatedUsers))
		case advisor.KeyS3:
			resources = append(resources, s3Resource())
		case advisor.KeyCognito:
			resources = append(resources, cognitoResource())
		case advisor.KeyAPIGateway:
			resources = append(resources, apiGatewayResource())
		}
	}

	mainTF := providerBlock(projectType, estimatedUsers)
	if len(resources) > 0 {
		mainTF += "\n\n" + strings.Join(resources, "\n\n")
	}

	return Bundle{
		Format: "terraform",
		Files: map[string]string{
			"main.tf":      mainTF,
			"variables.tf": variablesFile(projectType),
			"outputs.tf":   outputsFile(),
			"README.md":    readmeFile(estimatedUsers, projectType),
		},
		Instructions: []string{
			"1. Install Terraform",
			"2. Run: terraform init",
			"3. Run: terraform plan",
			"4. Run: terraform apply",
		},
	}
}

func providerBlock(projectType string, users int) string {
	return fmt.Sprintf(`# Terraform configuration for %s
# Estimated users: %s

terraform {
  required_version = ">= 1.0"
  required_providers {
    aws = {
      source  = "hashicorp/aws"
      version = "~> 5.0"
    }
  }
}

provider "aws" {
  region = var.aws_region
  default_tags {
    tags = {
      Project     = "%s"
      Environment = var.environment
      ManagedBy   = "Terraform"
    }
  }
}
`, projectType, util.FormatCount(users), projectType)
}

func variablesFile(projectType string) string {
	return fmt.Sprintf(`variable "aws_region" {
  description = "AWS region"
  type        = string
  default     = "us-east-1"
}

variable "environment" {
  description = "Environment name"
  type        = string
  default     = "prod"
}

variable "project_name" {
  description = "Project name"
  type        = string
  default     = "%s"
}
`, projectType)
}

func outputsFile() string {
	return `output "api_endpoint" {
  description = "API Gateway URL"
  value       = try(aws_api_gateway_deployment.main.invoke_url, "N/A")
}

output "lambda_function" {
  description = "Lambda function name"
  value       = try(aws_lambda_function.api.function_name, "N/A")
}
`
}

func readmeFile(users int, projectType string) string {
	return fmt.Sprintf(`# Terraform Deployment

## Prerequisites
- Install Terraform: https://www.terraform.io/downloads
- Configure AWS: aws configure

## Deploy

1. Initialize:
   terraform init

2. Plan:
   terraform plan

3. Apply:
   terraform apply

4. Get outputs:
   terraform output

## Cost
Estimated: %s/month for %s users

## Cleanup
terraform destroy
`, monthlyCostEstimate(users), util.FormatCount(users))
}

// monthlyCostEstimate buckets the README cost line by raw user count.
func monthlyCostEstimate(users int) string {
	switch {
	case users < 1000:
		return "$0-25"
	case users < 10000:
		return "$25-100"
	default:
		return "$100-500"
	}
}

func lambdaResource(users int) string {
	memory := 1024
	timeout := 60
	switch {
	case users < 1000:
		memory, timeout = 256, 10
	case users < 10000:
		memory, timeout = 512, 30
	}

	return fmt.Sprintf(`resource "aws_lambda_function" "api" {
  filename      = "lambda.zip"
  function_name = "${var.project_name}-api"
  role          = aws_iam_role.lambda.arn
  handler       = "index.handler"
  runtime       = "python3.11"
  memory_size   = %d
  timeout       = %d
}

resource "aws_iam_role" "lambda" {
  name = "${var.project_name}-lambda-role"
  assume_role_policy = jsonencode({
    Version = "2012-10-17"
    Statement = [{
      Action = "sts:AssumeRole"
      Effect = "Allow"
      Principal = { Service = "lambda.amazonaws.com" }
    }]
  })
}`, memory, timeout)
}

func dynamoDBResource(users int) string {
	billing := "PROVISIONED"
	if users < 10000 {
		billing = "PAY_PER_REQUEST"
	}

	return fmt.Sprintf(`resource "aws_dynamodb_table" "main" {
  name         = "${var.project_name}-data"
  billing_mode = "%s"
  hash_key     = "pk"
  range_key    = "sk"

  attribute {
    name = "pk"
    type = "S"
  }
  attribute {
    name = "sk"
    type = "S"
  }

  server_side_encryption {
    enabled = true
  }
}`, billing)
}

func s3Resource() string {
	return `resource "aws_s3_bucket" "main" {
  bucket = "${var.project_name}-storage"
}

resource "aws_s3_bucket_versioning" "main" {
  bucket = aws_s3_bucket.main.id
  versioning_configuration {
    status = "Enabled"
  }
}`
}

func cognitoResource() string {
	return `resource "aws_cognito_user_pool" "main" {
  name = "${var.project_name}-users"

  password_policy {
    minimum_length    = 8
    require_lowercase = true
    require_uppercase = true
    require_numbers   = true
  }
}`
}

func apiGatewayResource() string {
	return `resource "aws_api_gateway_rest_api" "main" {
  name = "${var.project_name}-api"
}

resource "aws_api_gateway_deployment" "main" {
  rest_api_id = aws_api_gateway_rest_api.main.id
  stage_name  = var.environment
}`
}

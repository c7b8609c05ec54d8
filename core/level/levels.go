// Package level - Built-in level content
// The ten campaign levels. All per-level rules are expressed as data on
// the RequirementSpec; there is no per-level code.
package level

import "github.com/shopspring/decimal"

func budget(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// RegisterBuiltin populates the registry with the campaign levels
func RegisterBuiltin(r *Registry) {
	r.Register(RequirementSpec{
		ID:          1,
		Title:       "Blog API",
		Description: "A serverless REST API backing a personal blog",
		Objective:   "Route requests through API Gateway into Lambda, store posts in DynamoDB and media in S3",
		RequiredTypes: []string{
			"api_gateway", "lambda", "dynamodb", "s3",
		},
		OptionalTypes:  []string{"iam"},
		AvailableTypes: []string{"api_gateway", "lambda", "dynamodb", "s3", "iam", "cloudfront"},
		RequiredConnections: []RequiredConnection{
			{From: []string{"api_gateway"}, To: []string{"lambda"}, Message: "API Gateway must be connected to Lambda for request processing"},
			{From: []string{"lambda"}, To: []string{"dynamodb"}, Message: "Lambda must be connected to DynamoDB for data storage"},
			{From: []string{"lambda"}, To: []string{"s3"}, Message: "Lambda must be connected to S3 for media storage"},
		},
		Budget:       budget("50"),
		MaxLatencyMs: 300,
	})

	r.Register(RequirementSpec{
		ID:             2,
		Title:          "Static Portfolio Site",
		Description:    "A static site served from object storage behind a CDN",
		Objective:      "Serve the S3 bucket through CloudFront",
		RequiredTypes:  []string{"cloudfront", "s3"},
		OptionalTypes:  []string{"waf", "lambda"},
		AvailableTypes: []string{"cloudfront", "s3", "waf", "lambda", "api_gateway"},
		RequiredConnections: []RequiredConnection{
			{From: []string{"cloudfront"}, To: []string{"s3"}, Message: "CloudFront must be connected to S3 for content delivery"},
		},
		Budget:       budget("20"),
		MaxLatencyMs: 100,
	})

	r.Register(RequirementSpec{
		ID:             3,
		Title:          "Secure User Authentication",
		Description:    "A login flow with managed identity and secret storage",
		Objective:      "Authenticate through Cognito and keep credentials in Secrets Manager",
		RequiredTypes:  []string{"cognito", "api_gateway", "lambda", "secrets_manager"},
		OptionalTypes:  []string{"iam", "kms", "dynamodb"},
		AvailableTypes: []string{"cognito", "api_gateway", "lambda", "secrets_manager", "iam", "kms", "dynamodb"},
		RequiredConnections: []RequiredConnection{
			{From: []string{"cognito"}, To: []string{"api_gateway"}, Message: "Cognito must be connected to API Gateway for authentication"},
			{From: []string{"api_gateway"}, To: []string{"lambda"}, Message: "API Gateway must be connected to Lambda for processing"},
			{From: []string{"lambda"}, To: []string{"secrets_manager"}, Message: "Lambda must be connected to Secrets Manager for secure credentials"},
		},
		Budget:       budget("60"),
		MaxLatencyMs: 400,
	})

	r.Register(RequirementSpec{
		ID:             4,
		Title:          "Real-time Chat Service",
		Description:    "WebSocket chat with queued fan-out and notifications",
		Objective:      "Handle WebSocket traffic in Lambda, queue with SQS, notify with SNS, store in DynamoDB",
		RequiredTypes:  []string{"api_gateway", "lambda", "sqs", "sns", "dynamodb"},
		OptionalTypes:  []string{"iam"},
		AvailableTypes: []string{"api_gateway", "lambda", "sqs", "sns", "dynamodb", "iam"},
		RequiredConnections: []RequiredConnection{
			{From: []string{"api_gateway"}, To: []string{"lambda"}, Message: "API Gateway must be connected to Lambda for WebSocket handling"},
			{From: []string{"lambda"}, To: []string{"sqs"}, Message: "Lambda must be connected to SQS for message queuing"},
			{From: []string{"lambda"}, To: []string{"sns"}, Message: "Lambda must be connected to SNS for notifications"},
			{From: []string{"lambda"}, To: []string{"dynamodb"}, Message: "Lambda must be connected to DynamoDB for message storage"},
		},
		Budget:       budget("80"),
		MaxLatencyMs: 350,
	})

	r.Register(RequirementSpec{
		ID:             5,
		Title:          "IoT Data Pipeline",
		Description:    "Streaming ingestion into a data lake and warehouse",
		Objective:      "Ingest with Kinesis, process with Lambda, land in S3, warehouse in Redshift",
		RequiredTypes:  []string{"kinesis", "lambda", "s3", "redshift"},
		OptionalTypes:  []string{"iam", "dynamodb"},
		AvailableTypes: []string{"kinesis", "lambda", "s3", "redshift", "iam", "dynamodb"},
		RequiredConnections: []RequiredConnection{
			{From: []string{"kinesis"}, To: []string{"lambda"}, Message: "Kinesis must be connected to Lambda for data processing"},
			{From: []string{"lambda"}, To: []string{"s3"}, Message: "Lambda must be connected to S3 for data storage"},
			{From: []string{"s3", "lambda"}, To: []string{"redshift"}, Message: "Either S3 or Lambda must be connected to Redshift for data warehousing"},
		},
		Budget:       budget("150"),
		MaxLatencyMs: 600,
	})

	r.Register(RequirementSpec{
		ID:             6,
		Title:          "High-Volume Payment System",
		Description:    "A classic three-tier system inside a private network",
		Objective:      "Run EC2 and RDS inside a VPC, scale with Auto Scaling, balance with ALB",
		RequiredTypes:  []string{"vpc", "ec2", "rds", "alb", "auto_scaling"},
		OptionalTypes:  []string{"elasticache", "iam", "cloudtrail"},
		AvailableTypes: []string{"vpc", "ec2", "rds", "alb", "auto_scaling", "elasticache", "iam", "cloudtrail", "s3"},
		RequiredConnections: []RequiredConnection{
			{From: []string{"vpc"}, To: []string{"ec2"}, Message: "EC2 instances must be in a VPC"},
			{From: []string{"vpc"}, To: []string{"rds"}, Message: "RDS must be in a VPC"},
			{From: []string{"auto_scaling"}, To: []string{"ec2"}, Message: "Auto Scaling must be connected to EC2 for scalability"},
			{From: []string{"alb"}, To: []string{"ec2"}, Message: "ALB must be connected to EC2 for load balancing"},
		},
		Budget:       budget("200"),
		MaxLatencyMs: 250,
	})

	r.Register(RequirementSpec{
		ID:             7,
		Title:          "HIPAA Compliant Healthcare API",
		Description:    "A locked-down API with encryption at rest and audit trails",
		Objective:      "Protect the API with WAF, encrypt DynamoDB with KMS, ship audit logs with CloudTrail",
		RequiredTypes:  []string{"waf", "api_gateway", "lambda", "dynamodb", "kms", "cloudtrail", "s3"},
		OptionalTypes:  []string{"iam"},
		AvailableTypes: []string{"waf", "api_gateway", "lambda", "dynamodb", "kms", "cloudtrail", "s3", "iam"},
		RequiredConnections: []RequiredConnection{
			{From: []string{"waf"}, To: []string{"api_gateway"}, Message: "WAF must be connected to API Gateway for protection"},
			{From: []string{"api_gateway"}, To: []string{"lambda"}, Message: "API Gateway must be connected to Lambda for processing"},
			{From: []string{"lambda"}, To: []string{"dynamodb"}, Message: "Lambda must be connected to DynamoDB for data storage"},
			{From: []string{"kms"}, To: []string{"dynamodb"}, Message: "KMS must be connected to DynamoDB for encryption"},
			{From: []string{"cloudtrail"}, Message: "CloudTrail must be connected for audit logging"},
		},
		Budget:       budget("120"),
		MaxLatencyMs: 400,
	})

	r.Register(RequirementSpec{
		ID:             8,
		Title:          "Video CDN and Transcoding",
		Description:    "Upload, transcode, and deliver video at the edge",
		Objective:      "Transcode with MediaConvert and deliver the output bucket through CloudFront",
		RequiredTypes:  []string{"s3", "media_convert", "cloudfront", "lambda"},
		OptionalTypes:  []string{"iam", "api_gateway"},
		AvailableTypes: []string{"s3", "media_convert", "cloudfront", "lambda", "iam", "api_gateway"},
		RequiredConnections: []RequiredConnection{
			{From: []string{"s3", "lambda"}, To: []string{"media_convert"}, Message: "Either S3 or Lambda must be connected to MediaConvert for transcoding"},
			{From: []string{"media_convert"}, To: []string{"s3"}, Message: "MediaConvert must be connected to S3 for output storage"},
			{From: []string{"cloudfront"}, To: []string{"s3"}, Message: "CloudFront must be connected to S3 for content delivery"},
			{To: []string{"lambda"}, Message: "Lambda must be used for workflow orchestration"},
		},
		Budget:       budget("300"),
		MaxLatencyMs: 800,
	})

	r.Register(RequirementSpec{
		ID:             9,
		Title:          "Microservices Architecture",
		Description:    "A meshed container platform for an online store",
		Objective:      "Orchestrate containers, mesh them with App Mesh, balance with ALB",
		RequiredTypes:  []string{"alb", "app_mesh", "dynamodb", "s3"},
		OptionalTypes:  []string{"iam", "sqs"},
		AvailableTypes: []string{"alb", "app_mesh", "dynamodb", "s3", "ecs", "eks", "iam", "sqs"},
		OneOfTypes: [][]string{
			{"ecs", "eks"},
		},
		RequiredConnections: []RequiredConnection{
			{From: []string{"app_mesh"}, Message: "App Mesh must be used for service mesh"},
			{From: []string{"alb"}, Message: "ALB must be used for load balancing"},
			{To: []string{"dynamodb"}, Message: "DynamoDB must be used for product catalog"},
			{To: []string{"s3"}, Message: "S3 must be used for static assets"},
		},
		Budget:       budget("250"),
		MaxLatencyMs: 300,
	})

	r.Register(RequirementSpec{
		ID:             10,
		Title:          "Secure FinTech Platform",
		Description:    "A regulated platform with hardware keys and continuous monitoring",
		Objective:      "Anchor keys in CloudHSM, watch threats with GuardDuty, guard data with Macie",
		RequiredTypes:  []string{"cloudhsm", "guardduty", "macie", "vpc", "rds", "ec2", "alb"},
		OptionalTypes:  []string{"kms", "iam", "cloudtrail", "sns"},
		AvailableTypes: []string{"cloudhsm", "guardduty", "macie", "vpc", "rds", "ec2", "alb", "kms", "iam", "cloudtrail", "sns", "s3"},
		RequiredConnections: []RequiredConnection{
			{From: []string{"cloudhsm"}, Message: "CloudHSM must be used for key management"},
			{From: []string{"guardduty"}, Message: "GuardDuty must be used for threat detection"},
			{From: []string{"macie"}, Message: "Macie must be used for data protection"},
			{From: []string{"vpc"}, To: []string{"rds"}, Message: "RDS must be in a VPC"},
			{From: []string{"vpc"}, To: []string{"ec2"}, Message: "EC2 instances must be in a VPC"},
			{From: []string{"alb"}, To: []string{"ec2"}, Message: "ALB must be connected to EC2 for load balancing"},
		},
		Budget:       budget("500"),
		MaxLatencyMs: 300,
	})
}

// Default returns a registry with the built-in campaign levels
func Default() *Registry {
	r := NewRegistry()
	RegisterBuiltin(r)
	return r
}

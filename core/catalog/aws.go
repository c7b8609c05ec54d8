// Package catalog - Built-in AWS service definitions
// This is the default catalog the game ships with. Costs are hourly
// on-demand approximations; latencies are per-hop contributions.
package catalog

import "github.com/shopspring/decimal"

func cost(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// RegisterAWS populates the catalog with the built-in AWS services
func RegisterAWS(c *Catalog) {
	// Entry points and routing
	c.Register(ServiceType{
		ID:            "api_gateway",
		DisplayName:   "API Gateway",
		Description:   "Managed API front door for HTTP and WebSocket traffic",
		Category:      CategoryNetworking,
		CostPerHour:   cost("0.025"),
		LatencyMs:     30,
		DirectTargets: []string{"lambda", "s3"},
	})
	c.Register(ServiceType{
		ID:            "cloudfront",
		DisplayName:   "CloudFront",
		Description:   "Content delivery network",
		Category:      CategoryCDN,
		CostPerHour:   cost("0.015"),
		LatencyMs:     10,
		DirectTargets: []string{"s3", "alb", "api_gateway"},
	})
	c.Register(ServiceType{
		ID:            "internet_gateway",
		DisplayName:   "Internet Gateway",
		Description:   "VPC internet access",
		Category:      CategoryNetworking,
		CostPerHour:   cost("0"),
		LatencyMs:     5,
		DirectTargets: []string{"alb", "api_gateway", "cloudfront", "s3"},
	})
	c.Register(ServiceType{
		ID:            "alb",
		DisplayName:   "Application Load Balancer",
		Description:   "Layer 7 load balancing",
		Category:      CategoryNetworking,
		CostPerHour:   cost("0.0225"),
		LatencyMs:     15,
		DirectTargets: []string{"ec2", "ecs", "eks"},
	})
	c.Register(ServiceType{
		ID:            "vpc",
		DisplayName:   "VPC",
		Description:   "Isolated virtual network, no direct cost",
		Category:      CategoryNetworking,
		CostPerHour:   cost("0"),
		LatencyMs:     0,
		DirectTargets: []string{"ec2", "rds"},
	})

	// Compute
	c.Register(ServiceType{
		ID:            "lambda",
		DisplayName:   "Lambda",
		Description:   "Serverless function compute",
		Category:      CategoryCompute,
		CostPerHour:   cost("0.0125"),
		LatencyMs:     100,
		DirectTargets: []string{"dynamodb", "s3", "sqs", "sns", "secrets_manager", "redshift", "media_convert"},
		RequiredVia: []ViaRule{
			{
				Target:       "rds",
				Intermediate: []string{"vpc"},
				Message:      "Lambda must reach RDS through a VPC",
			},
		},
	})
	c.Register(ServiceType{
		ID:            "ec2",
		DisplayName:   "EC2",
		Description:   "Virtual machine instances",
		Category:      CategoryCompute,
		CostPerHour:   cost("0.0416"),
		LatencyMs:     20,
		DirectTargets: []string{"rds", "dynamodb", "s3", "elasticache"},
	})
	c.Register(ServiceType{
		ID:            "auto_scaling",
		DisplayName:   "Auto Scaling",
		Description:   "Capacity management for EC2 fleets, no direct cost",
		Category:      CategoryCompute,
		CostPerHour:   cost("0"),
		LatencyMs:     0,
		DirectTargets: []string{"ec2"},
	})
	c.Register(ServiceType{
		ID:            "ecs",
		DisplayName:   "ECS",
		Description:   "Container orchestration",
		Category:      CategoryCompute,
		CostPerHour:   cost("0.04"),
		LatencyMs:     25,
		DirectTargets: []string{"dynamodb", "s3", "sqs"},
	})
	c.Register(ServiceType{
		ID:            "eks",
		DisplayName:   "EKS",
		Description:   "Managed Kubernetes",
		Category:      CategoryCompute,
		CostPerHour:   cost("0.10"),
		LatencyMs:     25,
		DirectTargets: []string{"dynamodb", "s3", "sqs"},
	})
	c.Register(ServiceType{
		ID:            "app_mesh",
		DisplayName:   "App Mesh",
		Description:   "Service mesh for container workloads",
		Category:      CategoryNetworking,
		CostPerHour:   cost("0.012"),
		LatencyMs:     8,
		DirectTargets: []string{"ecs", "eks"},
	})

	// Storage and databases
	c.Register(ServiceType{
		ID:            "s3",
		DisplayName:   "S3",
		Description:   "Object storage",
		Category:      CategoryStorage,
		CostPerHour:   cost("0.01"),
		LatencyMs:     15,
		DirectTargets: []string{"redshift", "media_convert"},
	})
	c.Register(ServiceType{
		ID:          "dynamodb",
		DisplayName: "DynamoDB",
		Description: "Serverless key-value database",
		Category:    CategoryDatabase,
		CostPerHour: cost("0.02"),
		LatencyMs:   5,
	})
	c.Register(ServiceType{
		ID:          "rds",
		DisplayName: "RDS",
		Description: "Managed relational database",
		Category:    CategoryDatabase,
		CostPerHour: cost("0.017"),
		LatencyMs:   10,
	})
	c.Register(ServiceType{
		ID:          "elasticache",
		DisplayName: "ElastiCache",
		Description: "In-memory cache",
		Category:    CategoryDatabase,
		CostPerHour: cost("0.017"),
		LatencyMs:   2,
	})
	c.Register(ServiceType{
		ID:          "redshift",
		DisplayName: "Redshift",
		Description: "Data warehouse",
		Category:    CategoryAnalytics,
		CostPerHour: cost("0.25"),
		LatencyMs:   150,
	})

	// Messaging and streaming
	c.Register(ServiceType{
		ID:            "sqs",
		DisplayName:   "SQS",
		Description:   "Message queuing",
		Category:      CategoryMessaging,
		CostPerHour:   cost("0.008"),
		LatencyMs:     10,
		DirectTargets: []string{"lambda"},
	})
	c.Register(ServiceType{
		ID:          "sns",
		DisplayName: "SNS",
		Description: "Pub/sub notifications",
		Category:    CategoryMessaging,
		CostPerHour: cost("0.008"),
		LatencyMs:   10,
	})
	c.Register(ServiceType{
		ID:            "kinesis",
		DisplayName:   "Kinesis",
		Description:   "Streaming data ingestion",
		Category:      CategoryAnalytics,
		CostPerHour:   cost("0.043"),
		LatencyMs:     20,
		DirectTargets: []string{"lambda", "s3"},
	})

	// Media
	c.Register(ServiceType{
		ID:            "media_convert",
		DisplayName:   "MediaConvert",
		Description:   "Video transcoding",
		Category:      CategoryMedia,
		CostPerHour:   cost("0.45"),
		LatencyMs:     500,
		DirectTargets: []string{"s3"},
	})

	// Security and identity
	c.Register(ServiceType{
		ID:            "iam",
		DisplayName:   "IAM",
		Description:   "Identity and access management, no direct cost",
		Category:      CategorySecurity,
		CostPerHour:   cost("0"),
		LatencyMs:     0,
		DirectTargets: []string{"lambda", "ec2"},
	})
	c.Register(ServiceType{
		ID:            "cognito",
		DisplayName:   "Cognito",
		Description:   "User authentication and identity pools",
		Category:      CategorySecurity,
		CostPerHour:   cost("0.011"),
		LatencyMs:     25,
		DirectTargets: []string{"api_gateway"},
	})
	c.Register(ServiceType{
		ID:            "waf",
		DisplayName:   "WAF",
		Description:   "Web application firewall",
		Category:      CategorySecurity,
		CostPerHour:   cost("0.014"),
		LatencyMs:     5,
		DirectTargets: []string{"cloudfront", "api_gateway", "alb"},
	})
	c.Register(ServiceType{
		ID:            "kms",
		DisplayName:   "KMS",
		Description:   "Key management for encryption at rest",
		Category:      CategorySecurity,
		CostPerHour:   cost("0.014"),
		LatencyMs:     5,
		DirectTargets: []string{"dynamodb", "rds", "s3"},
	})
	c.Register(ServiceType{
		ID:          "secrets_manager",
		DisplayName: "Secrets Manager",
		Description: "Credential storage and rotation",
		Category:    CategorySecurity,
		CostPerHour: cost("0.0055"),
		LatencyMs:   20,
	})
	c.Register(ServiceType{
		ID:            "cloudhsm",
		DisplayName:   "CloudHSM",
		Description:   "Dedicated hardware security modules",
		Category:      CategorySecurity,
		CostPerHour:   cost("1.60"),
		LatencyMs:     10,
		DirectTargets: []string{"kms"},
	})
	c.Register(ServiceType{
		ID:            "guardduty",
		DisplayName:   "GuardDuty",
		Description:   "Threat detection",
		Category:      CategorySecurity,
		CostPerHour:   cost("0.04"),
		LatencyMs:     0,
		DirectTargets: []string{"vpc", "sns"},
	})
	c.Register(ServiceType{
		ID:            "macie",
		DisplayName:   "Macie",
		Description:   "Sensitive data discovery",
		Category:      CategorySecurity,
		CostPerHour:   cost("0.05"),
		LatencyMs:     0,
		DirectTargets: []string{"s3", "sns"},
	})

	// Management and audit
	c.Register(ServiceType{
		ID:            "cloudtrail",
		DisplayName:   "CloudTrail",
		Description:   "API audit logging",
		Category:      CategoryManagement,
		CostPerHour:   cost("0.012"),
		LatencyMs:     0,
		DirectTargets: []string{"s3"},
	})
}

// Default returns the validated built-in AWS catalog. The built-in data
// is compiled in, so a validation failure is a programming error.
func Default() *Catalog {
	c := NewCatalog()
	RegisterAWS(c)
	if err := c.Validate(); err != nil {
		panic("built-in catalog is invalid: " + err.Error())
	}
	return c
}

package main

import (
	"fmt"
	"strconv"

	aws "github.com/pulumi/pulumi-aws/sdk/v6/go/aws"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/cloudwatch"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/iam"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/lambda"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/ssm"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// greetingParameter must match the key the function reads.
const greetingParameter = "/guild/hello-service/message"

func configOr(ctx *pulumi.Context, key, def string) string {
	if v, ok := ctx.GetConfig(key); ok && v != "" {
		return v
	}
	return def
}

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		project := ctx.Project()
		stack := ctx.Stack()

		// Create a single AWS provider with default tags applied to all supported resources.
		prov, err := aws.NewProvider(ctx, "prov", &aws.ProviderArgs{
			DefaultTags: &aws.ProviderDefaultTagsArgs{
				Tags: pulumi.StringMap{
					"Project":   pulumi.String(project),
					"Stack":     pulumi.String(stack),
					"ManagedBy": pulumi.String("Pulumi"),
				},
			},
		})
		if err != nil {
			return err
		}
		awsOpts := pulumi.Provider(prov)

		greeting := configOr(ctx, "hello:greeting", "Hello from Guild!")
		environment := configOr(ctx, "hello:environment", stack)
		version := configOr(ctx, "hello:version", "1.0.0")
		logLevel := configOr(ctx, "hello:logLevel", "INFO")
		retentionDays, err := strconv.Atoi(configOr(ctx, "hello:logRetentionDays", "14"))
		if err != nil {
			return fmt.Errorf("hello:logRetentionDays: %w", err)
		}

		param, err := ssm.NewParameter(ctx, fmt.Sprintf("%s-%s-greeting", project, stack), &ssm.ParameterArgs{
			Name:        pulumi.String(greetingParameter),
			Type:        pulumi.String("String"),
			Value:       pulumi.String(greeting),
			Description: pulumi.String("Greeting served by the hello function"),
		}, awsOpts)
		if err != nil {
			return err
		}

		// Lambda assume role policy
		lambdaAssumeRolePolicy, err := iam.GetPolicyDocument(ctx, &iam.GetPolicyDocumentArgs{
			Statements: []iam.GetPolicyDocumentStatement{
				{
					Effect: pulumi.StringRef("Allow"),
					Principals: []iam.GetPolicyDocumentStatementPrincipal{
						{
							Type: "Service",
							Identifiers: []string{
								"lambda.amazonaws.com",
							},
						},
					},
					Actions: []string{
						"sts:AssumeRole",
					},
				},
			},
		}, nil)
		if err != nil {
			return err
		}

		helloRole, err := iam.NewRole(ctx, fmt.Sprintf("%s-%s-hello-role", project, stack), &iam.RoleArgs{
			AssumeRolePolicy: pulumi.String(lambdaAssumeRolePolicy.Json),
		}, awsOpts)
		if err != nil {
			return err
		}
		_, err = iam.NewRolePolicyAttachment(ctx, fmt.Sprintf("%s-%s-hello-basic", project, stack), &iam.RolePolicyAttachmentArgs{
			Role:      helloRole.Name,
			PolicyArn: pulumi.String("arn:aws:iam::aws:policy/service-role/AWSLambdaBasicExecutionRole"),
		}, awsOpts)
		if err != nil {
			return err
		}
		// Read access to the greeting parameter only
		_, err = iam.NewRolePolicy(ctx, fmt.Sprintf("%s-%s-hello-ssm", project, stack), &iam.RolePolicyArgs{
			Role: helloRole.ID(),
			Policy: param.Arn.ApplyT(func(arn string) string {
				policyDoc, err := iam.GetPolicyDocument(ctx, &iam.GetPolicyDocumentArgs{
					Statements: []iam.GetPolicyDocumentStatement{
						{
							Effect: pulumi.StringRef("Allow"),
							Actions: []string{
								"ssm:GetParameter",
							},
							Resources: []string{arn},
						},
					},
				}, nil)
				if err != nil {
					panic(err)
				}
				return policyDoc.Json
			}).(pulumi.StringOutput),
		}, awsOpts)
		if err != nil {
			return err
		}

		functionName := fmt.Sprintf("%s-%s-hello", project, stack)

		// Created up front so retention applies from the first invocation
		logGroup, err := cloudwatch.NewLogGroup(ctx, fmt.Sprintf("%s-%s-hello-logs", project, stack), &cloudwatch.LogGroupArgs{
			Name:            pulumi.String("/aws/lambda/" + functionName),
			RetentionInDays: pulumi.Int(retentionDays),
		}, awsOpts)
		if err != nil {
			return err
		}

		helloZip := pulumi.NewFileArchive("../dist/hello.zip")
		helloFn, err := lambda.NewFunction(ctx, functionName, &lambda.FunctionArgs{
			Name:          pulumi.String(functionName),
			Role:          helloRole.Arn,
			Runtime:       pulumi.String("provided.al2"),
			Handler:       pulumi.String("bootstrap"),
			Architectures: pulumi.ToStringArray([]string{"arm64"}),
			Code:          helloZip,
			Environment: &lambda.FunctionEnvironmentArgs{
				Variables: pulumi.StringMap{
					"GREETING_MESSAGE": pulumi.String(greeting),
					"ENVIRONMENT":      pulumi.String(environment),
					"SERVICE_VERSION":  pulumi.String(version),
					"LOG_LEVEL":        pulumi.String(logLevel),
				},
			},
		}, awsOpts, pulumi.DependsOn([]pulumi.Resource{logGroup}))
		if err != nil {
			return err
		}

		// Public HTTPS endpoint; requests arrive with the payload in "body"
		fnURL, err := lambda.NewFunctionUrl(ctx, fmt.Sprintf("%s-%s-hello-url", project, stack), &lambda.FunctionUrlArgs{
			FunctionName:      helloFn.Name,
			AuthorizationType: pulumi.String("NONE"),
		}, awsOpts)
		if err != nil {
			return err
		}

		ctx.Export("helloLambda", helloFn.Name)
		ctx.Export("helloUrl", fnURL.FunctionUrl)
		ctx.Export("greetingParameter", param.Name)
		ctx.Export("logGroup", logGroup.Name)
		ctx.Export("region", aws.GetRegionOutput(ctx, aws.GetRegionOutputArgs{}).Name())
		return nil
	})
}

// Package iot implements the `nimbus iot` command tree.
package iot

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	awsiot "github.com/aws/aws-sdk-go-v2/service/iot"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/nimbus/pkg/clientfactory"
	"github.com/MacroPower/nimbus/pkg/helploader"
)

//go:embed help.yaml
var helpFS embed.FS

// helpModule locates this package's help document for the help loader.
var helpModule = &helploader.Module{Name: "iot", Dir: ".", FS: helpFS}

var ErrInvalidArgument = errors.New("invalid argument")

// RegisterHelp registers the iot command tree in the help registry.
func RegisterHelp(reg *helploader.Registry) {
	reg.AddGroup("iot", helpModule)
	reg.AddGroup("iot hub", helpModule)
	reg.AddCommand("iot hub show", helpModule)
	reg.AddCommand("iot hub create", helpModule)
	reg.AddCommand("iot hub deploy", helpModule)
}

// NewIoTCmd returns the iot command.
func NewIoTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iot",
		Short: "Manage cloud IoT resources",
	}

	cmd.AddCommand(NewHubCmd())

	return cmd
}

// NewHubCmd returns the iot hub command.
func NewHubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hub",
		Short: "Manage IoT hubs",
	}

	cmd.PersistentFlags().String("region", "", "Cloud region to operate in")

	cmd.AddCommand(NewHubShowCmd())
	cmd.AddCommand(NewHubCreateCmd())
	cmd.AddCommand(NewHubDeployCmd())

	return cmd
}

// NewHubShowCmd returns the iot hub show command.
func NewHubShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "show",
		Short:        "Show the details of an IoT hub",
		SilenceUsage: true,
		RunE: func(cc *cobra.Command, _ []string) error {
			var merr error

			flags := cc.Flags()
			name, err := flags.GetString("name")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			region, err := flags.GetString("region")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			client, err := clientfactory.IoT(cc.Context(), region)
			if err != nil {
				return err
			}

			out, err := client.DescribeThing(cc.Context(), &awsiot.DescribeThingInput{
				ThingName: aws.String(name),
			})
			if err != nil {
				return fmt.Errorf("failed to show hub %q: %w", name, err)
			}

			cc.Printf("%s\t%s\n", aws.ToString(out.ThingName), aws.ToString(out.ThingArn))

			return nil
		},
	}

	cmd.Flags().StringP("name", "n", "", "Name of the hub")
	must(cmd.MarkFlagRequired("name"))

	return cmd
}

// NewHubCreateCmd returns the iot hub create command.
func NewHubCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "create",
		Short:        "Create an IoT hub",
		SilenceUsage: true,
		RunE: func(cc *cobra.Command, _ []string) error {
			var merr error

			flags := cc.Flags()
			name, err := flags.GetString("name")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			hubType, err := flags.GetString("type")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			region, err := flags.GetString("region")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			client, err := clientfactory.IoT(cc.Context(), region)
			if err != nil {
				return err
			}

			in := &awsiot.CreateThingInput{ThingName: aws.String(name)}
			if hubType != "" {
				in.ThingTypeName = aws.String(hubType)
			}

			out, err := client.CreateThing(cc.Context(), in)
			if err != nil {
				return fmt.Errorf("failed to create hub %q: %w", name, err)
			}

			cc.Println(aws.ToString(out.ThingArn))

			return nil
		},
	}

	cmd.Flags().StringP("name", "n", "", "Name of the hub")
	cmd.Flags().StringP("type", "t", "", "Hub type name")
	must(cmd.MarkFlagRequired("name"))

	return cmd
}

// NewHubDeployCmd returns the iot hub deploy command.
func NewHubDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "deploy",
		Short:        "Deploy an IoT hub stack from a template",
		SilenceUsage: true,
		RunE: func(cc *cobra.Command, _ []string) error {
			var merr error

			flags := cc.Flags()
			stackName, err := flags.GetString("stack-name")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			templateFile, err := flags.GetString("template-file")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			region, err := flags.GetString("region")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			body, err := os.ReadFile(templateFile)
			if err != nil {
				return fmt.Errorf("failed to read template: %w", err)
			}

			client, err := clientfactory.CloudFormation(cc.Context(), region)
			if err != nil {
				return err
			}

			out, err := client.CreateStack(cc.Context(), &cloudformation.CreateStackInput{
				StackName:    aws.String(stackName),
				TemplateBody: aws.String(string(body)),
			})
			if err != nil {
				return fmt.Errorf("failed to deploy stack %q: %w", stackName, err)
			}

			cc.Println(aws.ToString(out.StackId))

			return nil
		},
	}

	cmd.Flags().String("stack-name", "", "Name of the stack to create")
	cmd.Flags().StringP("template-file", "f", "", "Path to the stack template")
	must(cmd.MarkFlagRequired("stack-name"))
	must(cmd.MarkFlagRequired("template-file"))
	must(cmd.MarkFlagFilename("template-file"))

	return cmd
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"ec2uploadimg/builder"
	"ec2uploadimg/config"
	"ec2uploadimg/driver"
	"ec2uploadimg/driverset"
	"ec2uploadimg/manifest"
	"ec2uploadimg/remote"
	"ec2uploadimg/resources"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "EC2UPLOADIMG"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "ec2uploadimg [flags] <source image>",
		Short: "Create an EC2 image from a raw disk image",
		Long:  "Writes a raw disk image, optionally compressed or archived, onto a new EBS volume through a helper instance and registers it as an EC2 image.",

		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			v.SetEnvPrefix(envPrefix)
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()

			var bindErr error
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				if err := v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
					bindErr = fmt.Errorf("binding flag %s: %w", f.Name, err)
				}
			})
			return bindErr
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	defaults := config.NewUploadConfiguration()
	flags := cmd.Flags()
	flags.StringP("account", "a", "", "Account section of the configuration file to read settings from")
	flags.StringP("file", "f", "", "Path to the ec2utils configuration file (default ~/"+config.DefaultFileName+")")
	flags.StringP("region", "r", "", "Region to create the image in")
	flags.String("access-id", "", "AWS access key id")
	flags.String("secret-key", "", "AWS secret access key")
	flags.String("role-arn", "", "Role to assume for all API calls")
	flags.StringP("name", "n", "", "Name of the image to create")
	flags.StringP("description", "d", defaults.Description, "Description of the image")
	flags.StringP("machine", "m", defaults.Architecture, "Architecture of the image")
	flags.String("virt-type", defaults.VirtualizationType, "Virtualization type of the image (hvm or paravirtual)")
	flags.StringP("backing-store", "B", defaults.BackingStore, "Backing store of the root volume (ssd or mag)")
	flags.Int64("root-volume-size", defaults.RootVolumeSizeGB, "Size of the root volume in GB")
	flags.String("boot-kernel", "", "Kernel id the image boots")
	flags.String("sriov-support", "", "SR-IOV support type of the image, e.g. simple")
	flags.Bool("ena-support", false, "Mark the image as supporting ENA networking")
	flags.String("ec2-ami", "", "Id of the image the helper instance is launched from")
	flags.String("instance-type", defaults.InstanceType, "Instance type of the helper instance")
	flags.String("ssh-key-pair", "", "Name of the key pair the helper instance is launched with")
	flags.String("private-key-file", "", "Private key of the key pair")
	flags.String("user", defaults.SSHUser, "User to log into the helper instance as")
	flags.String("subnet-id", "", "Subnet to launch the helper instance into")
	flags.String("security-group-ids", "", "Comma separated security groups of the helper instance")
	flags.Bool("use-private-ip", false, "Connect to the helper instance over its private address")
	flags.Int("timeout", int(defaults.OperationTimeout/time.Second), "Seconds to wait for each cloud operation")
	flags.Int("wait-count", defaults.WaitCount, "Number of times a cloud operation is waited for before giving up")
	flags.Bool("use-root-swap", false, "Create the image by swapping the root volume of the helper instance")
	flags.Bool("snapshot-only", false, "Only create the snapshot, do not register an image")
	flags.BoolP("verbose", "v", false, "Log progress to stderr")

	return cmd
}

func run(ctx context.Context, v *viper.Viper, source string, stdout io.Writer, stderr io.Writer) error {
	upload, err := uploadConfiguration(v, source)
	if err != nil {
		return err
	}
	if err = upload.Validate(); err != nil {
		return err
	}
	if _, err = os.Stat(source); err != nil {
		return fmt.Errorf("source image file %s not found", source)
	}
	if v.GetBool("use-root-swap") && v.GetBool("snapshot-only") {
		return fmt.Errorf("--use-root-swap and --snapshot-only cannot be combined")
	}

	var logDest io.Writer = io.Discard
	if upload.Verbose {
		logDest = &logWriter{writer: stderr}
	}
	logger := log.New(logDest, "", log.LstdFlags)

	runCtx := driver.NewRunContext(source, upload.ImageProperties())
	policy := upload.WaitPolicy(resources.DefaultPollInterval)
	ds, err := driverset.NewStandardRegionDriverSet(logDest, upload.Credentials(), runCtx, policy)
	if err != nil {
		return err
	}
	shell := remote.NewChannel(logDest, remote.NewSSHTransport(), remote.Credentials{
		User:           upload.SSHUser,
		PrivateKeyPath: upload.PrivateKeyPath,
	})
	b := builder.NewImageBuilder(logDest, ds, shell, builder.NewConfig(upload, resources.DefaultPollInterval))

	logger.Printf("building image %s in %s, run %s\n", upload.ImageName, upload.Region, upload.RunID)

	var result builder.Result
	switch {
	case upload.UseRootSwap:
		result, err = b.CreateImageUseRootSwap(ctx, source)
	case v.GetBool("snapshot-only"):
		result, err = b.CreateSnapshot(ctx, source)
	default:
		result, err = b.CreateImage(ctx, source)
	}

	if result.ImageID != "" || result.SnapshotID != "" {
		m := manifest.New(result, upload.ImageProperties(), upload.Region, upload.RunID)
		if writeErr := m.Write(stdout); writeErr != nil {
			logger.Printf("writing manifest: %s\n", writeErr)
		}
	}
	if err != nil {
		return err
	}

	logger.Println("image creation finished successfully")
	return nil
}

// uploadConfiguration merges flags, environment and the ec2utils account settings.
// Explicit flags and environment values win over the configuration file.
func uploadConfiguration(v *viper.Viper, source string) (config.UploadConfiguration, error) {
	c := config.NewUploadConfiguration()
	c.SourcePath = source
	c.Account = v.GetString("account")
	c.Region = v.GetString("region")
	c.AccessKey = v.GetString("access-id")
	c.SecretKey = v.GetString("secret-key")
	c.RoleArn = v.GetString("role-arn")
	c.ImageName = v.GetString("name")
	c.Description = v.GetString("description")
	c.Architecture = v.GetString("machine")
	c.VirtualizationType = v.GetString("virt-type")
	c.BackingStore = v.GetString("backing-store")
	c.RootVolumeSizeGB = v.GetInt64("root-volume-size")
	c.BootKernel = v.GetString("boot-kernel")
	c.SriovSupport = v.GetString("sriov-support")
	c.EnaSupport = v.GetBool("ena-support")
	c.LauncherImage = v.GetString("ec2-ami")
	c.InstanceType = v.GetString("instance-type")
	c.SSHKeyPairName = v.GetString("ssh-key-pair")
	c.PrivateKeyPath = v.GetString("private-key-file")
	c.SSHUser = v.GetString("user")
	c.SubnetID = v.GetString("subnet-id")
	c.SecurityGroupIDs = config.ParseList(v.GetString("security-group-ids"))
	c.UsePrivateIP = v.GetBool("use-private-ip")
	c.OperationTimeout = time.Duration(v.GetInt("timeout")) * time.Second
	c.WaitCount = v.GetInt("wait-count")
	c.UseRootSwap = v.GetBool("use-root-swap")
	c.Verbose = v.GetBool("verbose")

	if c.Account == "" {
		return c, nil
	}

	path := v.GetString("file")
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return c, err
		}
	}
	file, err := config.Load(path)
	if err != nil {
		return c, err
	}
	settings, err := file.Account(c.Account, c.Region)
	if err != nil {
		return c, err
	}
	c.ApplyAccount(settings)

	return c, nil
}

type logWriter struct {
	sync.Mutex
	writer io.Writer
}

func (l *logWriter) Write(message []byte) (int, error) {
	l.Lock()
	defer l.Unlock()

	return l.writer.Write(message)
}

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

const accountConfig = `
[account-tester]
access_key_id = AKIAEXAMPLE
secret_access_key = secret
ssh_key_name = tester-key
ssh_private_key = /home/tester/.ssh/id_rsa
ami = ami-launcher

[region-us-east-1]
ami = ami-east
`

var _ = Describe("Main", func() {
	var (
		workDir    string
		sourcePath string
		configPath string
	)

	runCommand := func(env []string, args ...string) *gexec.Session {
		command := exec.Command(pathToBinary, args...)
		command.Env = append(os.Environ(), env...)

		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())
		session.Wait(30 * time.Second)

		return session
	}

	BeforeEach(func() {
		workDir = GinkgoT().TempDir()

		sourcePath = filepath.Join(workDir, "image.raw")
		Expect(os.WriteFile(sourcePath, []byte("raw disk"), 0644)).To(Succeed())

		configPath = filepath.Join(workDir, "ec2utils.conf")
		Expect(os.WriteFile(configPath, []byte(accountConfig), 0644)).To(Succeed())
	})

	It("prints usage with --help", func() {
		session := runCommand(nil, "--help")

		Expect(session.ExitCode()).To(BeZero())
		Expect(session.Out).To(gbytes.Say(`ec2uploadimg \[flags\] <source image>`))
		Expect(string(session.Out.Contents())).To(ContainSubstring("--use-root-swap"))
		Expect(string(session.Out.Contents())).To(ContainSubstring("--backing-store"))
	})

	It("requires exactly one source image", func() {
		session := runCommand(nil)

		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("accepts 1 arg"))
	})

	It("reports the first validation failure", func() {
		session := runCommand(nil, sourcePath)

		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("image name must be specified"))
	})

	It("reads options from the environment", func() {
		session := runCommand([]string{"EC2UPLOADIMG_NAME=from-env"}, sourcePath)

		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("region must be specified"))
	})

	It("maps dashed flag names to underscored environment variables", func() {
		session := runCommand([]string{
			"EC2UPLOADIMG_NAME=from-env",
			"EC2UPLOADIMG_REGION=us-east-1",
			"EC2UPLOADIMG_EC2_AMI=ami-env",
			"EC2UPLOADIMG_SSH_KEY_PAIR=env-key",
		}, sourcePath)

		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("ssh private key file must be specified"))
	})

	It("fails when the account is not in the configuration file", func() {
		session := runCommand(nil, "-a", "nobody", "-f", configPath, "-r", "us-east-1", "-n", "img", sourcePath)

		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("account nobody not found in configuration"))
	})

	It("fails when the configuration file cannot be read", func() {
		missing := filepath.Join(workDir, "missing.conf")
		session := runCommand(nil, "-a", "tester", "-f", missing, "-r", "us-east-1", "-n", "img", sourcePath)

		Expect(session.ExitCode()).To(Equal(1))
		Expect(string(session.Err.Contents())).To(ContainSubstring(missing))
	})

	It("completes the options from the account settings before checking the source", func() {
		missing := filepath.Join(workDir, "missing.raw")
		session := runCommand(nil, "-a", "tester", "-f", configPath, "-r", "us-east-1", "-n", "img", missing)

		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("source image file " + missing + " not found"))
	})

	It("rejects combining root swap with snapshot only", func() {
		session := runCommand(nil, "-a", "tester", "-f", configPath, "-r", "us-east-1", "-n", "img",
			"--use-root-swap", "--snapshot-only", sourcePath)

		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("cannot be combined"))
	})

	It("rejects an invalid backing store", func() {
		session := runCommand(nil, "-a", "tester", "-f", configPath, "-r", "us-east-1", "-n", "img",
			"-B", "tape", sourcePath)

		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say(`backing store must be one of`))
	})
})

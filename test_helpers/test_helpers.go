package test_helpers

import (
	"fmt"
	"sort"
	"sync"

	"ec2uploadimg/driver"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ec2"
)

var _ driver.ComputeAPI = &FakeCompute{}

// transition moves a resource from its current state to target after the resource
// has been described Lag more times
type transition struct {
	state     string
	target    string
	remaining int
}

type fakeVolume struct {
	id                  string
	sizeGB              int64
	zone                string
	volumeType          string
	status              transition
	instanceID          string
	device              string
	attachState         string
	deleteOnTermination bool
}

type fakeInstance struct {
	id         string
	imageID    string
	zone       string
	status     transition
	publicIP   string
	privateIP  string
	rootDevice string
}

type fakeSnapshot struct {
	id       string
	volumeID string
	status   transition
}

type fakeImage struct {
	id                 string
	name               string
	virtualizationType string
	rootDeviceName     string
	owned              bool
	status             transition
	register           *ec2.RegisterImageInput
	instanceID         string
}

// FakeCompute is an in-memory EC2 whose resources change state asynchronously
type FakeCompute struct {
	sync.Mutex

	// Lag is how many describe calls a resource stays in its transitional state
	Lag int

	// Errors are returned by the named operation, e.g. "CreateSnapshot", instead of running it
	Errors map[string]error

	volumes        map[string]*fakeVolume
	instances      map[string]*fakeInstance
	snapshots      map[string]*fakeSnapshot
	images         map[string]*fakeImage
	subnets        map[string]string
	securityGroups map[string]bool
	zones          []string
	frozen         map[string]bool
	failing        map[string]string
	calls          map[string]int
	nextID         int

	CreateVolumeInputs     []*ec2.CreateVolumeInput
	LastRunInstancesInput  *ec2.RunInstancesInput
	LastRegisterImageInput *ec2.RegisterImageInput
	LastCreateImageInput   *ec2.CreateImageInput
}

func NewFakeCompute() *FakeCompute {
	return &FakeCompute{
		Errors:         map[string]error{},
		volumes:        map[string]*fakeVolume{},
		instances:      map[string]*fakeInstance{},
		snapshots:      map[string]*fakeSnapshot{},
		images:         map[string]*fakeImage{},
		subnets:        map[string]string{},
		securityGroups: map[string]bool{},
		zones:          []string{"us-east-1a", "us-east-1b", "us-east-1c"},
		frozen:         map[string]bool{},
		failing:        map[string]string{},
		calls:          map[string]int{},
	}
}

// AddImage registers an existing image, such as the helper image instances launch from
func (f *FakeCompute) AddImage(name string, virtualizationType string, rootDeviceName string) string {
	f.Lock()
	defer f.Unlock()

	id := f.newID("ami")
	f.images[id] = &fakeImage{
		id:                 id,
		name:               name,
		virtualizationType: virtualizationType,
		rootDeviceName:     rootDeviceName,
		status:             transition{state: "available", target: "available"},
	}
	return id
}

// AddOwnedImage registers an image owned by the account, visible to name lookups
func (f *FakeCompute) AddOwnedImage(name string) string {
	id := f.AddImage(name, "hvm", "/dev/sda1")
	f.Lock()
	f.images[id].owned = true
	f.Unlock()
	return id
}

func (f *FakeCompute) AddSubnet(id string, zone string) {
	f.Lock()
	defer f.Unlock()
	f.subnets[id] = zone
}

func (f *FakeCompute) AddSecurityGroup(id string) {
	f.Lock()
	defer f.Unlock()
	f.securityGroups[id] = true
}

func (f *FakeCompute) SetZones(zones ...string) {
	f.Lock()
	defer f.Unlock()
	f.zones = zones
}

// Freeze keeps the resource in its current state forever
func (f *FakeCompute) Freeze(id string) {
	f.Lock()
	defer f.Unlock()
	f.frozen[id] = true
}

// FreezeNext freezes every resource of the given kind ("volume", "instance", "snapshot", "image")
// created from now on
func (f *FakeCompute) FreezeNext(kind string) {
	f.Lock()
	defer f.Unlock()
	f.frozen["next-"+kind] = true
}

// FailNext makes every resource of the given kind created from now on end up in the
// given state instead of its target, e.g. FailNext("image", "failed")
func (f *FakeCompute) FailNext(kind string, state string) {
	f.Lock()
	defer f.Unlock()
	f.failing[kind] = state
}

// Calls returns how often the named operation was invoked
func (f *FakeCompute) Calls(operation string) int {
	f.Lock()
	defer f.Unlock()
	return f.calls[operation]
}

// ActiveInstances lists the instances that are not terminated
func (f *FakeCompute) ActiveInstances() []string {
	f.Lock()
	defer f.Unlock()

	ids := []string{}
	for id, instance := range f.instances {
		if instance.status.state != ec2.InstanceStateNameTerminated {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// VolumeIDs lists every volume that still exists
func (f *FakeCompute) VolumeIDs() []string {
	f.Lock()
	defer f.Unlock()

	ids := []string{}
	for id := range f.volumes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (f *FakeCompute) VolumeState(id string) string {
	f.Lock()
	defer f.Unlock()
	if v, ok := f.volumes[id]; ok {
		return v.status.state
	}
	return ""
}

func (f *FakeCompute) InstanceState(id string) string {
	f.Lock()
	defer f.Unlock()
	if i, ok := f.instances[id]; ok {
		return i.status.state
	}
	return ""
}

func (f *FakeCompute) CreateVolumeWithContext(_ aws.Context, input *ec2.CreateVolumeInput, _ ...request.Option) (*ec2.Volume, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("CreateVolume"); err != nil {
		return nil, err
	}
	f.CreateVolumeInputs = append(f.CreateVolumeInputs, input)

	v := &fakeVolume{
		id:         f.newID("vol"),
		sizeGB:     aws.Int64Value(input.Size),
		zone:       aws.StringValue(input.AvailabilityZone),
		volumeType: aws.StringValue(input.VolumeType),
	}
	v.status = f.start(v.id, "volume", ec2.VolumeStateCreating, ec2.VolumeStateAvailable)
	f.volumes[v.id] = v
	return f.volumeOutput(v), nil
}

func (f *FakeCompute) AttachVolumeWithContext(_ aws.Context, input *ec2.AttachVolumeInput, _ ...request.Option) (*ec2.VolumeAttachment, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("AttachVolume"); err != nil {
		return nil, err
	}

	v, ok := f.volumes[aws.StringValue(input.VolumeId)]
	if !ok {
		return nil, notFound("InvalidVolume.NotFound", aws.StringValue(input.VolumeId))
	}
	instance, ok := f.instances[aws.StringValue(input.InstanceId)]
	if !ok {
		return nil, notFound("InvalidInstanceID.NotFound", aws.StringValue(input.InstanceId))
	}
	if v.status.state != ec2.VolumeStateAvailable {
		return nil, awserr.New("IncorrectState", fmt.Sprintf("volume %s is %s", v.id, v.status.state), nil)
	}
	for _, other := range f.volumes {
		if other.instanceID == instance.id && other.device == aws.StringValue(input.Device) {
			return nil, awserr.New("InvalidParameterValue", fmt.Sprintf("device %s is already in use", other.device), nil)
		}
	}

	v.instanceID = instance.id
	v.device = aws.StringValue(input.Device)
	v.attachState = ec2.VolumeAttachmentStateAttaching
	v.status = f.startFrom(v.id, v.status, ec2.VolumeStateInUse)
	return &ec2.VolumeAttachment{
		VolumeId:   aws.String(v.id),
		InstanceId: aws.String(instance.id),
		Device:     aws.String(v.device),
		State:      aws.String(v.attachState),
	}, nil
}

func (f *FakeCompute) DetachVolumeWithContext(_ aws.Context, input *ec2.DetachVolumeInput, _ ...request.Option) (*ec2.VolumeAttachment, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("DetachVolume"); err != nil {
		return nil, err
	}

	v, ok := f.volumes[aws.StringValue(input.VolumeId)]
	if !ok {
		return nil, notFound("InvalidVolume.NotFound", aws.StringValue(input.VolumeId))
	}
	if v.instanceID == "" {
		return nil, awserr.New("IncorrectState", fmt.Sprintf("volume %s is not attached", v.id), nil)
	}

	v.attachState = ec2.VolumeAttachmentStateDetaching
	v.status = f.startFrom(v.id, v.status, ec2.VolumeStateAvailable)
	return &ec2.VolumeAttachment{
		VolumeId:   aws.String(v.id),
		InstanceId: aws.String(v.instanceID),
		Device:     aws.String(v.device),
		State:      aws.String(v.attachState),
	}, nil
}

func (f *FakeCompute) DeleteVolumeWithContext(_ aws.Context, input *ec2.DeleteVolumeInput, _ ...request.Option) (*ec2.DeleteVolumeOutput, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("DeleteVolume"); err != nil {
		return nil, err
	}

	v, ok := f.volumes[aws.StringValue(input.VolumeId)]
	if !ok {
		return nil, notFound("InvalidVolume.NotFound", aws.StringValue(input.VolumeId))
	}
	if v.instanceID != "" {
		return nil, awserr.New("VolumeInUse", fmt.Sprintf("volume %s is attached to %s", v.id, v.instanceID), nil)
	}

	delete(f.volumes, v.id)
	return &ec2.DeleteVolumeOutput{}, nil
}

func (f *FakeCompute) DescribeVolumesWithContext(_ aws.Context, input *ec2.DescribeVolumesInput, _ ...request.Option) (*ec2.DescribeVolumesOutput, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("DescribeVolumes"); err != nil {
		return nil, err
	}

	output := &ec2.DescribeVolumesOutput{}
	if len(input.VolumeIds) == 0 {
		for _, id := range f.sortedVolumeIDs() {
			v := f.volumes[id]
			f.advanceVolume(v)
			output.Volumes = append(output.Volumes, f.volumeOutput(v))
		}
		return output, nil
	}

	for _, id := range aws.StringValueSlice(input.VolumeIds) {
		v, ok := f.volumes[id]
		if !ok {
			return nil, notFound("InvalidVolume.NotFound", id)
		}
		f.advanceVolume(v)
		output.Volumes = append(output.Volumes, f.volumeOutput(v))
	}
	return output, nil
}

func (f *FakeCompute) DescribeVolumesPagesWithContext(ctx aws.Context, input *ec2.DescribeVolumesInput, fn func(*ec2.DescribeVolumesOutput, bool) bool, opts ...request.Option) error {
	output, err := f.DescribeVolumesWithContext(ctx, input, opts...)
	if err != nil {
		return err
	}
	fn(output, true)
	return nil
}

func (f *FakeCompute) RunInstancesWithContext(_ aws.Context, input *ec2.RunInstancesInput, _ ...request.Option) (*ec2.Reservation, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("RunInstances"); err != nil {
		return nil, err
	}
	f.LastRunInstancesInput = input

	image, ok := f.images[aws.StringValue(input.ImageId)]
	if !ok {
		return nil, notFound("InvalidAMIID.NotFound", aws.StringValue(input.ImageId))
	}

	zone := f.zones[0]
	if input.Placement != nil && aws.StringValue(input.Placement.AvailabilityZone) != "" {
		zone = aws.StringValue(input.Placement.AvailabilityZone)
	}
	for _, nic := range input.NetworkInterfaces {
		subnetZone, ok := f.subnets[aws.StringValue(nic.SubnetId)]
		if !ok {
			return nil, notFound("InvalidSubnetID.NotFound", aws.StringValue(nic.SubnetId))
		}
		zone = subnetZone
	}

	instance := &fakeInstance{
		id:         f.newID("i"),
		imageID:    image.id,
		zone:       zone,
		rootDevice: image.rootDeviceName,
	}
	instance.status = f.start(instance.id, "instance", ec2.InstanceStateNamePending, ec2.InstanceStateNameRunning)
	f.instances[instance.id] = instance

	root := &fakeVolume{
		id:                  f.newID("vol"),
		sizeGB:              8,
		zone:                zone,
		volumeType:          "gp2",
		status:              transition{state: ec2.VolumeStateInUse, target: ec2.VolumeStateInUse},
		instanceID:          instance.id,
		device:              image.rootDeviceName,
		attachState:         ec2.VolumeAttachmentStateAttached,
		deleteOnTermination: true,
	}
	f.volumes[root.id] = root

	return &ec2.Reservation{Instances: []*ec2.Instance{f.instanceOutput(instance)}}, nil
}

func (f *FakeCompute) StopInstancesWithContext(_ aws.Context, input *ec2.StopInstancesInput, _ ...request.Option) (*ec2.StopInstancesOutput, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("StopInstances"); err != nil {
		return nil, err
	}

	for _, id := range aws.StringValueSlice(input.InstanceIds) {
		instance, ok := f.instances[id]
		if !ok {
			return nil, notFound("InvalidInstanceID.NotFound", id)
		}
		if instance.status.state != ec2.InstanceStateNameRunning {
			return nil, awserr.New("IncorrectInstanceState", fmt.Sprintf("instance %s is %s", id, instance.status.state), nil)
		}
		instance.status = f.startFrom(id, transition{state: ec2.InstanceStateNameStopping}, ec2.InstanceStateNameStopped)
	}
	return &ec2.StopInstancesOutput{}, nil
}

func (f *FakeCompute) TerminateInstancesWithContext(_ aws.Context, input *ec2.TerminateInstancesInput, _ ...request.Option) (*ec2.TerminateInstancesOutput, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("TerminateInstances"); err != nil {
		return nil, err
	}

	for _, id := range aws.StringValueSlice(input.InstanceIds) {
		if _, ok := f.instances[id]; !ok {
			return nil, notFound("InvalidInstanceID.NotFound", id)
		}
	}
	for _, id := range aws.StringValueSlice(input.InstanceIds) {
		instance := f.instances[id]
		if instance.status.state == ec2.InstanceStateNameTerminated {
			continue
		}
		// termination always goes through, even for instances frozen in another state
		delete(f.frozen, id)
		instance.status = f.startFrom(id, transition{state: ec2.InstanceStateNameShuttingDown}, ec2.InstanceStateNameTerminated)
		if instance.status.state == ec2.InstanceStateNameTerminated {
			f.releaseVolumes(instance.id)
		}
	}
	return &ec2.TerminateInstancesOutput{}, nil
}

func (f *FakeCompute) DescribeInstancesWithContext(_ aws.Context, input *ec2.DescribeInstancesInput, _ ...request.Option) (*ec2.DescribeInstancesOutput, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("DescribeInstances"); err != nil {
		return nil, err
	}

	reservation := &ec2.Reservation{}
	for _, id := range aws.StringValueSlice(input.InstanceIds) {
		instance, ok := f.instances[id]
		if !ok {
			return nil, notFound("InvalidInstanceID.NotFound", id)
		}
		f.advanceInstance(instance)
		reservation.Instances = append(reservation.Instances, f.instanceOutput(instance))
	}
	return &ec2.DescribeInstancesOutput{Reservations: []*ec2.Reservation{reservation}}, nil
}

func (f *FakeCompute) CreateSnapshotWithContext(_ aws.Context, input *ec2.CreateSnapshotInput, _ ...request.Option) (*ec2.Snapshot, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("CreateSnapshot"); err != nil {
		return nil, err
	}

	if _, ok := f.volumes[aws.StringValue(input.VolumeId)]; !ok {
		return nil, notFound("InvalidVolume.NotFound", aws.StringValue(input.VolumeId))
	}

	s := &fakeSnapshot{id: f.newID("snap"), volumeID: aws.StringValue(input.VolumeId)}
	s.status = f.start(s.id, "snapshot", ec2.SnapshotStatePending, ec2.SnapshotStateCompleted)
	f.snapshots[s.id] = s
	return &ec2.Snapshot{
		SnapshotId: aws.String(s.id),
		VolumeId:   aws.String(s.volumeID),
		State:      aws.String(s.status.state),
	}, nil
}

func (f *FakeCompute) DescribeSnapshotsWithContext(_ aws.Context, input *ec2.DescribeSnapshotsInput, _ ...request.Option) (*ec2.DescribeSnapshotsOutput, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("DescribeSnapshots"); err != nil {
		return nil, err
	}

	output := &ec2.DescribeSnapshotsOutput{}
	for _, id := range aws.StringValueSlice(input.SnapshotIds) {
		s, ok := f.snapshots[id]
		if !ok {
			return nil, notFound("InvalidSnapshot.NotFound", id)
		}
		f.advance(id, &s.status)
		output.Snapshots = append(output.Snapshots, &ec2.Snapshot{
			SnapshotId: aws.String(s.id),
			VolumeId:   aws.String(s.volumeID),
			State:      aws.String(s.status.state),
		})
	}
	return output, nil
}

func (f *FakeCompute) RegisterImageWithContext(_ aws.Context, input *ec2.RegisterImageInput, _ ...request.Option) (*ec2.RegisterImageOutput, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("RegisterImage"); err != nil {
		return nil, err
	}
	f.LastRegisterImageInput = input

	for _, mapping := range input.BlockDeviceMappings {
		if mapping.Ebs == nil {
			continue
		}
		if _, ok := f.snapshots[aws.StringValue(mapping.Ebs.SnapshotId)]; !ok {
			return nil, notFound("InvalidSnapshot.NotFound", aws.StringValue(mapping.Ebs.SnapshotId))
		}
	}
	if err := f.checkNameFree(aws.StringValue(input.Name)); err != nil {
		return nil, err
	}

	image := &fakeImage{
		id:                 f.newID("ami"),
		name:               aws.StringValue(input.Name),
		virtualizationType: aws.StringValue(input.VirtualizationType),
		rootDeviceName:     aws.StringValue(input.RootDeviceName),
		owned:              true,
		register:           input,
	}
	image.status = f.start(image.id, "image", ec2.ImageStatePending, ec2.ImageStateAvailable)
	f.images[image.id] = image
	return &ec2.RegisterImageOutput{ImageId: aws.String(image.id)}, nil
}

func (f *FakeCompute) CreateImageWithContext(_ aws.Context, input *ec2.CreateImageInput, _ ...request.Option) (*ec2.CreateImageOutput, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("CreateImage"); err != nil {
		return nil, err
	}
	f.LastCreateImageInput = input

	instance, ok := f.instances[aws.StringValue(input.InstanceId)]
	if !ok {
		return nil, notFound("InvalidInstanceID.NotFound", aws.StringValue(input.InstanceId))
	}
	if err := f.checkNameFree(aws.StringValue(input.Name)); err != nil {
		return nil, err
	}

	source := f.images[instance.imageID]
	image := &fakeImage{
		id:                 f.newID("ami"),
		name:               aws.StringValue(input.Name),
		virtualizationType: source.virtualizationType,
		rootDeviceName:     instance.rootDevice,
		owned:              true,
		instanceID:         instance.id,
	}
	image.status = f.start(image.id, "image", ec2.ImageStatePending, ec2.ImageStateAvailable)
	f.images[image.id] = image
	return &ec2.CreateImageOutput{ImageId: aws.String(image.id)}, nil
}

func (f *FakeCompute) DescribeImagesWithContext(_ aws.Context, input *ec2.DescribeImagesInput, _ ...request.Option) (*ec2.DescribeImagesOutput, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("DescribeImages"); err != nil {
		return nil, err
	}

	output := &ec2.DescribeImagesOutput{}
	if len(input.ImageIds) > 0 {
		for _, id := range aws.StringValueSlice(input.ImageIds) {
			image, ok := f.images[id]
			if !ok {
				return nil, notFound("InvalidAMIID.NotFound", id)
			}
			f.advance(id, &image.status)
			output.Images = append(output.Images, imageOutput(image))
		}
		return output, nil
	}

	ownedOnly := false
	for _, owner := range aws.StringValueSlice(input.Owners) {
		if owner == "self" {
			ownedOnly = true
		}
	}
	names := map[string]bool{}
	for _, filter := range input.Filters {
		if aws.StringValue(filter.Name) == "name" {
			for _, v := range aws.StringValueSlice(filter.Values) {
				names[v] = true
			}
		}
	}

	ids := []string{}
	for id := range f.images {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		image := f.images[id]
		if ownedOnly && !image.owned {
			continue
		}
		if len(names) > 0 && !names[image.name] {
			continue
		}
		output.Images = append(output.Images, imageOutput(image))
	}
	return output, nil
}

// RegisteredImage returns the registration input of an image created through RegisterImage
func (f *FakeCompute) RegisteredImage(id string) *ec2.RegisterImageInput {
	f.Lock()
	defer f.Unlock()
	if image, ok := f.images[id]; ok {
		return image.register
	}
	return nil
}

func (f *FakeCompute) DescribeSubnetsWithContext(_ aws.Context, input *ec2.DescribeSubnetsInput, _ ...request.Option) (*ec2.DescribeSubnetsOutput, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("DescribeSubnets"); err != nil {
		return nil, err
	}

	output := &ec2.DescribeSubnetsOutput{}
	for _, id := range aws.StringValueSlice(input.SubnetIds) {
		zone, ok := f.subnets[id]
		if !ok {
			return nil, notFound("InvalidSubnetID.NotFound", id)
		}
		output.Subnets = append(output.Subnets, &ec2.Subnet{
			SubnetId:         aws.String(id),
			AvailabilityZone: aws.String(zone),
		})
	}
	return output, nil
}

func (f *FakeCompute) DescribeSecurityGroupsWithContext(_ aws.Context, input *ec2.DescribeSecurityGroupsInput, _ ...request.Option) (*ec2.DescribeSecurityGroupsOutput, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("DescribeSecurityGroups"); err != nil {
		return nil, err
	}

	output := &ec2.DescribeSecurityGroupsOutput{}
	for _, id := range aws.StringValueSlice(input.GroupIds) {
		if !f.securityGroups[id] {
			return nil, notFound("InvalidGroup.NotFound", id)
		}
		output.SecurityGroups = append(output.SecurityGroups, &ec2.SecurityGroup{GroupId: aws.String(id)})
	}
	return output, nil
}

func (f *FakeCompute) DescribeAvailabilityZonesWithContext(_ aws.Context, _ *ec2.DescribeAvailabilityZonesInput, _ ...request.Option) (*ec2.DescribeAvailabilityZonesOutput, error) {
	f.Lock()
	defer f.Unlock()
	if err := f.record("DescribeAvailabilityZones"); err != nil {
		return nil, err
	}

	output := &ec2.DescribeAvailabilityZonesOutput{}
	for _, zone := range f.zones {
		output.AvailabilityZones = append(output.AvailabilityZones, &ec2.AvailabilityZone{
			ZoneName: aws.String(zone),
			State:    aws.String(ec2.AvailabilityZoneStateAvailable),
		})
	}
	return output, nil
}

func (f *FakeCompute) record(operation string) error {
	f.calls[operation]++
	if err, ok := f.Errors[operation]; ok {
		return err
	}
	return nil
}

func (f *FakeCompute) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%08d", prefix, f.nextID)
}

func (f *FakeCompute) start(id string, kind string, state string, target string) transition {
	if f.frozen["next-"+kind] {
		f.frozen[id] = true
	}
	if failed, ok := f.failing[kind]; ok {
		target = failed
	}
	return f.startFrom(id, transition{state: state}, target)
}

// startFrom begins a transition, completing it at once when there is no lag
func (f *FakeCompute) startFrom(id string, current transition, target string) transition {
	t := transition{state: current.state, target: target, remaining: f.Lag}
	if t.remaining == 0 && !f.frozen[id] {
		t.state = target
	}
	return t
}

// advance reports whether the transition completed during this call
func (f *FakeCompute) advance(id string, t *transition) bool {
	if t.state == t.target || f.frozen[id] {
		return false
	}
	if t.remaining > 0 {
		t.remaining--
		return false
	}
	t.state = t.target
	return true
}

func (f *FakeCompute) advanceVolume(v *fakeVolume) {
	f.advance(v.id, &v.status)

	switch {
	case v.status.state == ec2.VolumeStateInUse && v.attachState == ec2.VolumeAttachmentStateAttaching:
		v.attachState = ec2.VolumeAttachmentStateAttached
	case v.status.state == ec2.VolumeStateAvailable && v.attachState == ec2.VolumeAttachmentStateDetaching:
		v.instanceID = ""
		v.device = ""
		v.attachState = ""
	}
}

func (f *FakeCompute) advanceInstance(instance *fakeInstance) {
	completed := f.advance(instance.id, &instance.status)
	if !completed && instance.status.state != instance.status.target {
		return
	}
	switch instance.status.state {
	case ec2.InstanceStateNameRunning:
		if instance.publicIP == "" {
			instance.publicIP = fmt.Sprintf("54.0.0.%d", len(f.instances))
			instance.privateIP = fmt.Sprintf("10.0.0.%d", len(f.instances))
		}
	case ec2.InstanceStateNameTerminated:
		f.releaseVolumes(instance.id)
	}
}

// releaseVolumes detaches the volumes of a terminated instance and deletes those
// marked for deletion on termination
func (f *FakeCompute) releaseVolumes(instanceID string) {
	for id, v := range f.volumes {
		if v.instanceID != instanceID {
			continue
		}
		if v.deleteOnTermination {
			delete(f.volumes, id)
			continue
		}
		v.instanceID = ""
		v.device = ""
		v.attachState = ""
		v.status = transition{state: ec2.VolumeStateAvailable, target: ec2.VolumeStateAvailable}
	}
}

func (f *FakeCompute) checkNameFree(name string) error {
	for _, image := range f.images {
		if image.owned && image.name == name {
			return awserr.New("InvalidAMIName.Duplicate", fmt.Sprintf("image name %s is already in use", name), nil)
		}
	}
	return nil
}

func (f *FakeCompute) sortedVolumeIDs() []string {
	ids := []string{}
	for id := range f.volumes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (f *FakeCompute) volumeOutput(v *fakeVolume) *ec2.Volume {
	out := &ec2.Volume{
		VolumeId:         aws.String(v.id),
		Size:             aws.Int64(v.sizeGB),
		AvailabilityZone: aws.String(v.zone),
		VolumeType:       aws.String(v.volumeType),
		State:            aws.String(v.status.state),
	}
	if v.instanceID != "" {
		out.Attachments = []*ec2.VolumeAttachment{
			{
				VolumeId:            aws.String(v.id),
				InstanceId:          aws.String(v.instanceID),
				Device:              aws.String(v.device),
				State:               aws.String(v.attachState),
				DeleteOnTermination: aws.Bool(v.deleteOnTermination),
			},
		}
	}
	return out
}

func (f *FakeCompute) instanceOutput(instance *fakeInstance) *ec2.Instance {
	out := &ec2.Instance{
		InstanceId:     aws.String(instance.id),
		ImageId:        aws.String(instance.imageID),
		State:          &ec2.InstanceState{Name: aws.String(instance.status.state)},
		Placement:      &ec2.Placement{AvailabilityZone: aws.String(instance.zone)},
		RootDeviceName: aws.String(instance.rootDevice),
	}
	if instance.publicIP != "" {
		out.PublicIpAddress = aws.String(instance.publicIP)
		out.PrivateIpAddress = aws.String(instance.privateIP)
	}
	return out
}

func imageOutput(image *fakeImage) *ec2.Image {
	return &ec2.Image{
		ImageId:            aws.String(image.id),
		Name:               aws.String(image.name),
		State:              aws.String(image.status.state),
		VirtualizationType: aws.String(image.virtualizationType),
		RootDeviceName:     aws.String(image.rootDeviceName),
	}
}

func notFound(code string, id string) error {
	return awserr.New(code, fmt.Sprintf("The ID '%s' does not exist", id), nil)
}

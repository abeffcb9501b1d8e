package tokens

// CL10Errors holds the OpenCL 1.0 error codes.
var CL10Errors = Table{
	Name: "CL10.errors",
	Constants: []Constant{
		{"CL_SUCCESS", 0},
		{"CL_DEVICE_NOT_FOUND", -1},
		{"CL_DEVICE_NOT_AVAILABLE", -2},
		{"CL_COMPILER_NOT_AVAILABLE", -3},
		{"CL_MEM_OBJECT_ALLOCATION_FAILURE", -4},
		{"CL_OUT_OF_RESOURCES", -5},
		{"CL_OUT_OF_HOST_MEMORY", -6},
		{"CL_PROFILING_INFO_NOT_AVAILABLE", -7},
		{"CL_MEM_COPY_OVERLAP", -8},
		{"CL_IMAGE_FORMAT_MISMATCH", -9},
		{"CL_IMAGE_FORMAT_NOT_SUPPORTED", -10},
		{"CL_BUILD_PROGRAM_FAILURE", -11},
		{"CL_MAP_FAILURE", -12},
		{"CL_INVALID_VALUE", -30},
		{"CL_INVALID_DEVICE_TYPE", -31},
		{"CL_INVALID_PLATFORM", -32},
		{"CL_INVALID_DEVICE", -33},
		{"CL_INVALID_CONTEXT", -34},
		{"CL_INVALID_QUEUE_PROPERTIES", -35},
		{"CL_INVALID_COMMAND_QUEUE", -36},
		{"CL_INVALID_HOST_PTR", -37},
		{"CL_INVALID_MEM_OBJECT", -38},
		{"CL_INVALID_IMAGE_FORMAT_DESCRIPTOR", -39},
		{"CL_INVALID_IMAGE_SIZE", -40},
		{"CL_INVALID_SAMPLER", -41},
		{"CL_INVALID_BINARY", -42},
		{"CL_INVALID_BUILD_OPTIONS", -43},
		{"CL_INVALID_PROGRAM", -44},
		{"CL_INVALID_PROGRAM_EXECUTABLE", -45},
		{"CL_INVALID_KERNEL_NAME", -46},
		{"CL_INVALID_KERNEL_DEFINITION", -47},
		{"CL_INVALID_KERNEL", -48},
		{"CL_INVALID_ARG_INDEX", -49},
		{"CL_INVALID_ARG_VALUE", -50},
		{"CL_INVALID_ARG_SIZE", -51},
		{"CL_INVALID_KERNEL_ARGS", -52},
		{"CL_INVALID_WORK_DIMENSION", -53},
		{"CL_INVALID_WORK_GROUP_SIZE", -54},
		{"CL_INVALID_WORK_ITEM_SIZE", -55},
		{"CL_INVALID_GLOBAL_OFFSET", -56},
		{"CL_INVALID_EVENT_WAIT_LIST", -57},
		{"CL_INVALID_EVENT", -58},
		{"CL_INVALID_OPERATION", -59},
		{"CL_INVALID_GL_OBJECT", -60},
		{"CL_INVALID_BUFFER_SIZE", -61},
		{"CL_INVALID_MIP_LEVEL", -62},
		{"CL_INVALID_GLOBAL_WORK_SIZE", -63},
	},
}

// CL10DeviceTypes holds the cl_device_type bitfield values.
var CL10DeviceTypes = Table{
	Name: "CL10.device_type",
	Constants: []Constant{
		{"CL_DEVICE_TYPE_DEFAULT", 1 << 0},
		{"CL_DEVICE_TYPE_CPU", 1 << 1},
		{"CL_DEVICE_TYPE_GPU", 1 << 2},
		{"CL_DEVICE_TYPE_ACCELERATOR", 1 << 3},
		{"CL_DEVICE_TYPE_ALL", -1}, // 0xFFFFFFFF
	},
}

// CL10MemFlags holds the cl_mem_flags bitfield values.
var CL10MemFlags = Table{
	Name: "CL10.mem_flags",
	Constants: []Constant{
		{"CL_MEM_READ_WRITE", 1 << 0},
		{"CL_MEM_WRITE_ONLY", 1 << 1},
		{"CL_MEM_READ_ONLY", 1 << 2},
		{"CL_MEM_USE_HOST_PTR", 1 << 3},
		{"CL_MEM_ALLOC_HOST_PTR", 1 << 4},
		{"CL_MEM_COPY_HOST_PTR", 1 << 5},
	},
}

// CL10Info holds a selection of the info query parameter names.
var CL10Info = Table{
	Name: "CL10.info",
	Constants: []Constant{
		{"CL_PLATFORM_PROFILE", 0x0900},
		{"CL_PLATFORM_VERSION", 0x0901},
		{"CL_PLATFORM_NAME", 0x0902},
		{"CL_PLATFORM_VENDOR", 0x0903},
		{"CL_PLATFORM_EXTENSIONS", 0x0904},
		{"CL_DEVICE_TYPE", 0x1000},
		{"CL_DEVICE_VENDOR_ID", 0x1001},
		{"CL_DEVICE_MAX_COMPUTE_UNITS", 0x1002},
		{"CL_DEVICE_NAME", 0x102B},
		{"CL_DEVICE_VENDOR", 0x102C},
		{"CL_DRIVER_VERSION", 0x102D},
		{"CL_DEVICE_PROFILE", 0x102E},
		{"CL_DEVICE_VERSION", 0x102F},
		{"CL_DEVICE_EXTENSIONS", 0x1030},
		{"CL_CONTEXT_REFERENCE_COUNT", 0x1080},
		{"CL_CONTEXT_DEVICES", 0x1081},
		{"CL_CONTEXT_PROPERTIES", 0x1082},
		{"CL_QUEUE_CONTEXT", 0x1090},
		{"CL_QUEUE_DEVICE", 0x1091},
		{"CL_QUEUE_REFERENCE_COUNT", 0x1092},
		{"CL_QUEUE_PROPERTIES", 0x1093},
		{"CL_PROGRAM_REFERENCE_COUNT", 0x1160},
		{"CL_PROGRAM_CONTEXT", 0x1161},
		{"CL_PROGRAM_NUM_DEVICES", 0x1162},
		{"CL_PROGRAM_DEVICES", 0x1163},
		{"CL_PROGRAM_SOURCE", 0x1164},
		{"CL_KERNEL_FUNCTION_NAME", 0x1190},
		{"CL_KERNEL_NUM_ARGS", 0x1191},
		{"CL_KERNEL_REFERENCE_COUNT", 0x1192},
	},
}

// CL10 is every built-in table.
var CL10 = []Table{CL10Errors, CL10DeviceTypes, CL10MemFlags, CL10Info}

// Lookup returns the built-in table with the given name.
func Lookup(name string) (Table, bool) {
	for _, t := range CL10 {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

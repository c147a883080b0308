package srng

// Ground-truth vectors for the generator, produced with the reference C
// implementation (compiled with strict aliasing disabled; the portable
// packing path is the semantic reference). This implementation must
// match them bit for bit on every platform.

// byteVector records the first 16 byte-generator outputs from a
// starting state, and the state left behind.
type byteVector struct {
	seed  uint64
	bytes [16]uint8
	final uint64
}

// halfwordVector records the first 8 halfword outputs from a starting
// state, and the state left behind.
type halfwordVector struct {
	seed      uint64
	halfwords [8]uint16
	final     uint64
}

// seedVector records one and three applications of the seed-derivation
// function to a starting state.
type seedVector struct {
	seed   uint64
	once   uint64
	thrice uint64
}

// randomVector records six successive Random calls with a fixed limit
// and reseed count, and the state left behind.
type randomVector struct {
	seed   uint64
	limit  uint16
	reseed uint
	draws  [6]uint16
	final  uint64
}

var byteVectors = []byteVector{
	{0x0000000000000000,
		[16]uint8{57, 223, 153, 231, 142, 157, 126, 132, 168, 47, 6, 45, 40, 10, 209, 202},
		0xB134C2CA05F895F3},
	{0x0000000000000001,
		[16]uint8{117, 179, 50, 69, 9, 91, 43, 204, 21, 109, 209, 225, 157, 64, 37, 203},
		0x2D34C2CA2F94648D},
	{0x0123456789ABCDEF,
		[16]uint8{6, 40, 176, 223, 13, 235, 232, 214, 208, 201, 142, 149, 178, 105, 145, 51},
		0x118D54801263D367},
	{0xDEADBEEFCAFEBABE,
		[16]uint8{70, 146, 16, 48, 154, 201, 198, 177, 255, 204, 58, 195, 97, 185, 93, 213},
		0x6EEFCF5F50F6A469},
	{0xFFFFFFFFFFFFFFFF,
		[16]uint8{164, 3, 115, 115, 168, 176, 72, 78, 207, 17, 5, 87, 47, 95, 79, 191},
		0x0F39D844295CABE7},
	{0x0000002A00000000,
		[16]uint8{123, 200, 53, 216, 56, 19, 210, 79, 93, 99, 78, 12, 205, 127, 48, 76},
		0xF4FD51A905F895F3},
	{0x8000000000000001,
		[16]uint8{115, 180, 44, 102, 80, 230, 198, 68, 191, 190, 57, 56, 218, 24, 55, 210},
		0xAD34C2CA2F94648D},
}

var halfwordVectors = []halfwordVector{
	{0x0000000000000000,
		[8]uint16{43135, 2429, 4708, 8164, 8542, 3777, 61169, 61906},
		0x3984E5568CD15F97},
	{0x0000000000000001,
		[8]uint16{64701, 56766, 42315, 31035, 58150, 4156, 20024, 151},
		0xB584E556438131B0},
	{0x0123456789ABCDEF,
		[8]uint16{48968, 35638, 19932, 16733, 60106, 59170, 17072, 58737},
		0x9928A3C1EAA664EA},
	{0xDEADBEEFCAFEBABE,
		[8]uint16{51883, 39882, 57039, 54889, 21996, 25657, 56832, 14707},
		0x36D8CF8D6362DB26},
	{0xFFFFFFFFFFFFFFFF,
		[8]uint16{55626, 49100, 51383, 54622, 821, 25366, 62281, 61465},
		0x17A571B0D1266D93},
	{0x0000002A00000000,
		[8]uint16{12674, 47630, 26814, 47704, 28769, 8858, 58757, 3217},
		0x3C30B70D8CD15F97},
	{0x8000000000000001,
		[8]uint16{59713, 25845, 16088, 10045, 58908, 19671, 43366, 22757},
		0x3584E556438131B0},
}

var seedVectors = []seedVector{
	{0x0000000000000000, 0x6123C57B73BB40F5, 0x13C432A171E25C49},
	{0x0000000000000001, 0x3FB7CEA19D596869, 0x7B6D1BA88DFEC3A9},
	{0x0123456789ABCDEF, 0x32125537F8FACF52, 0xBFC67F45A8FBA700},
	{0xDEADBEEFCAFEBABE, 0x72D7387C6B6EA41D, 0x0FF6F63758A90115},
	{0xFFFFFFFFFFFFFFFF, 0xEFA921749496C030, 0xF65FB4CECAA21427},
	{0x0000002A00000000, 0xEB48F1CD061C4E34, 0x0D262FB4E5A364B9},
	{0x8000000000000001, 0xBFFE8B1638B510F6, 0xE153258CA6DAE373},
}

var randomVectors = []randomVector{
	{0x0000000000000000, 0, 0, [6]uint16{43135, 2429, 4708, 8164, 8542, 3777}, 0xE3724F9F4ED6F7A5},
	{0x0000000000000000, 1, 0, [6]uint16{0, 0, 0, 0, 0, 0}, 0x0000000000000000},
	{0x0000000000000000, 1, 2, [6]uint16{0, 0, 0, 0, 0, 0}, 0x79E14B0975EC7C02},
	{0x0000000000000000, 2, 0, [6]uint16{1, 1, 0, 0, 0, 1}, 0xE3724F9F4ED6F7A5},
	{0x0000000000000000, 10, 0, [6]uint16{5, 9, 8, 4, 2, 7}, 0xE3724F9F4ED6F7A5},
	{0x0000000000000000, 100, 0, [6]uint16{35, 29, 8, 64, 42, 77}, 0xE3724F9F4ED6F7A5},
	{0x0000000000000000, 1000, 1, [6]uint16{794, 431, 155, 15, 32, 120}, 0x3AFF6D568AF1FBB6},
	{0x0000000000000000, 32768, 0, [6]uint16{10367, 2429, 4708, 8164, 8542, 3777}, 0xE3724F9F4ED6F7A5},
	{0x0000000000000000, 65535, 0, [6]uint16{43135, 2429, 4708, 8164, 8542, 3777}, 0xE3724F9F4ED6F7A5},
	{0x0000000000000000, 60000, 0, [6]uint16{43135, 8164, 8542, 1169, 1906, 33934}, 0x20465882FED9ACD9},
	{0x0000000000000000, 10, 3, [6]uint16{0, 7, 8, 6, 0, 5}, 0x06903687CE8F4FE0},
	{0x0123456789ABCDEF, 0, 0, [6]uint16{48968, 35638, 19932, 16733, 60106, 59170}, 0x432A5C453272D7EB},
	{0x0123456789ABCDEF, 1, 0, [6]uint16{0, 0, 0, 0, 0, 0}, 0x0123456789ABCDEF},
	{0x0123456789ABCDEF, 1, 2, [6]uint16{0, 0, 0, 0, 0, 0}, 0x8139E77BB205F131},
	{0x0123456789ABCDEF, 2, 0, [6]uint16{0, 0, 0, 1, 0, 0}, 0x432A5C453272D7EB},
	{0x0123456789ABCDEF, 10, 0, [6]uint16{8, 8, 2, 3, 6, 0}, 0x432A5C453272D7EB},
	{0x0123456789ABCDEF, 100, 0, [6]uint16{68, 38, 32, 33, 6, 70}, 0x432A5C453272D7EB},
	{0x0123456789ABCDEF, 1000, 1, [6]uint16{963, 774, 696, 949, 606, 203}, 0x23CC3CAC400725F5},
	{0x0123456789ABCDEF, 32768, 0, [6]uint16{16200, 2870, 19932, 16733, 27338, 26402}, 0x432A5C453272D7EB},
	{0x0123456789ABCDEF, 65535, 0, [6]uint16{48968, 35638, 19932, 16733, 60106, 59170}, 0x432A5C453272D7EB},
	{0x0123456789ABCDEF, 60000, 0, [6]uint16{48968, 35638, 19932, 16733, 106, 59170}, 0x432A5C453272D7EB},
	{0x0123456789ABCDEF, 10, 3, [6]uint16{6, 9, 6, 4, 6, 2}, 0xFA5D578621556457},
	{0xDEADBEEFCAFEBABE, 0, 0, [6]uint16{51883, 39882, 57039, 54889, 21996, 25657}, 0x306D92AA2389B17A},
	{0xDEADBEEFCAFEBABE, 1, 0, [6]uint16{0, 0, 0, 0, 0, 0}, 0xDEADBEEFCAFEBABE},
	{0xDEADBEEFCAFEBABE, 1, 2, [6]uint16{0, 0, 0, 0, 0, 0}, 0xC411E993673C309F},
	{0xDEADBEEFCAFEBABE, 2, 0, [6]uint16{1, 0, 1, 1, 0, 1}, 0x306D92AA2389B17A},
	{0xDEADBEEFCAFEBABE, 10, 0, [6]uint16{3, 2, 9, 9, 6, 7}, 0x306D92AA2389B17A},
	{0xDEADBEEFCAFEBABE, 100, 0, [6]uint16{83, 82, 39, 89, 96, 57}, 0x306D92AA2389B17A},
	{0xDEADBEEFCAFEBABE, 1000, 1, [6]uint16{710, 344, 122, 459, 377, 299}, 0x6BC9A21F35FB62FD},
	{0xDEADBEEFCAFEBABE, 32768, 0, [6]uint16{19115, 7114, 24271, 22121, 21996, 25657}, 0x306D92AA2389B17A},
	{0xDEADBEEFCAFEBABE, 65535, 0, [6]uint16{51883, 39882, 57039, 54889, 21996, 25657}, 0x306D92AA2389B17A},
	{0xDEADBEEFCAFEBABE, 60000, 0, [6]uint16{51883, 39882, 57039, 54889, 21996, 25657}, 0x306D92AA2389B17A},
	{0xDEADBEEFCAFEBABE, 10, 3, [6]uint16{1, 9, 6, 8, 0, 7}, 0x6259CBBABA19205D},
}

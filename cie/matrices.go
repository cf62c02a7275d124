// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// Matrices are the linear transforms between the linear RGB of a [Space]
// and CIE XYZ relative to a [White]. Rows are X, Y, Z for RGBToXYZ and
// R, G, B for XYZToRGB, in row-major order.
type Matrices struct {
	RGBToXYZ f64.Mat3
	XYZToRGB f64.Mat3
}

type spaceWhite struct {
	space Space
	white White
}

// LookupMatrices returns the prepared matrices for the given color space
// and reference white. The table is closed: each space is available at its
// native white and Bradford-adapted to D50 and D65. Any other pair returns
// [ErrUnsupportedCombination].
func LookupMatrices(s Space, w White) (Matrices, error) {
	m, ok := matrices[spaceWhite{s, w}]
	if !ok {
		return Matrices{}, fmt.Errorf("cie.LookupMatrices: %w: %s/%s", ErrUnsupportedCombination, s, w)
	}
	return m, nil
}

// MulVec returns the product of the row-major matrix m and the column vector (x, y, z).
func MulVec(m f64.Mat3, x, y, z float64) (a, b, c float64) {
	a = m[0]*x + m[1]*y + m[2]*z
	b = m[3]*x + m[4]*y + m[5]*z
	c = m[6]*x + m[7]*y + m[8]*z
	return
}

// matrices was computed from the primaries and white points of each space
// (Lindbloom's method), with Bradford adaptation for the D50 and D65 variants.
var matrices = map[spaceWhite]Matrices{
	{AdobeRGB1998, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.5767308872, 0.1855539507, 0.1881851621,
			0.2973768637, 0.6273490715, 0.0752740648,
			0.0270342603, 0.0706872193, 0.9911085203,
		},
		XYZToRGB: f64.Mat3{
			2.0413689793, -0.5649463872, -0.3446943844,
			-0.9692660305, 1.8760108454, 0.0415560175,
			0.0134473872, -0.1183897424, 1.0154095720,
		},
	},
	{AdobeRGB1998, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.6097559085, 0.2052400681, 0.1492240233,
			0.3111242494, 0.6256560264, 0.0632197243,
			0.0194811306, 0.0608901968, 0.7448386726,
		},
		XYZToRGB: f64.Mat3{
			1.9624274264, -0.6105342878, -0.3413403682,
			-0.9787683815, 1.9161414887, 0.0334539816,
			0.0286868758, -0.1406752067, 1.3487654626,
		},
	},
	{AppleRGB, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.4497288366, 0.3162486094, 0.1844925540,
			0.2446524871, 0.6720282950, 0.0833192180,
			0.0251848148, 0.1411824149, 0.9224627702,
		},
		XYZToRGB: f64.Mat3{
			2.9515372909, -1.2894115659, -0.4738444780,
			-1.0851093382, 1.9908566081, 0.0372025611,
			0.0854933545, -0.2694963527, 1.0912975249,
		},
	},
	{AppleRGB, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.4755677572, 0.3396722456, 0.1489799972,
			0.2551811628, 0.6725692547, 0.0722495824,
			0.0184697379, 0.1133771022, 0.6933631598,
		},
		XYZToRGB: f64.Mat3{
			2.8510694613, -1.3605261190, -0.4708281249,
			-1.0927680112, 2.0348871298, 0.0227598332,
			0.1027403371, -0.2964983680, 1.4510658864,
		},
	},
	{BestRGB, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.6326696500, 0.2045557979, 0.1269945521,
			0.2284568642, 0.7373522948, 0.0341908409,
			0.0000000000, 0.0095142232, 0.8156957768,
		},
		XYZToRGB: f64.Mat3{
			1.7552599329, -0.4836785614, -0.2530000499,
			-0.5441336297, 1.5068789210, 0.0215528259,
			0.0063467397, -0.0175761390, 1.2256958660,
		},
	},
	{BestRGB, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.5993008261, 0.1790815762, 0.1720875977,
			0.2128301589, 0.7390958504, 0.0480739907,
			0.0031011885, 0.0000655143, 1.0856632972,
		},
		XYZToRGB: f64.Mat3{
			1.8272283949, -0.4427101708, -0.2700289317,
			-0.5258315473, 1.4804109315, 0.0177954127,
			-0.0051877319, 0.0011752627, 0.9218661507,
		},
	},
	{BetaRGB, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.6712537003, 0.1745833898, 0.1183829099,
			0.3032725777, 0.6637860908, 0.0329413315,
			0.0000000000, 0.0407009615, 0.7845090385,
		},
		XYZToRGB: f64.Mat3{
			1.6832269543, -0.4282362832, -0.2360184809,
			-0.7710228944, 1.7065571005, 0.0446899513,
			0.0400012894, -0.0885375584, 1.2723640226,
		},
	},
	{BetaRGB, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.6344471373, 0.1541054287, 0.1619174340,
			0.2872981364, 0.6663013454, 0.0464005182,
			0.0020432494, 0.0426793168, 1.0441074338,
		},
		XYZToRGB: f64.Mat3{
			1.7532325117, -0.3891885849, -0.2545910018,
			-0.7578833572, 1.6733443957, 0.0431665171,
			0.0275485565, -0.0676386203, 0.9564895748,
		},
	},
	{BruceRGB, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.4674161638, 0.2944512299, 0.1886026063,
			0.2410114594, 0.6835474980, 0.0754410425,
			0.0219101327, 0.0736128075, 0.9933070598,
		},
		XYZToRGB: f64.Mat3{
			2.7454668666, -1.1358136045, -0.4350268528,
			-0.9692660305, 1.8760108454, 0.0415560175,
			0.0112722952, -0.1139754292, 1.0132540899,
		},
	},
	{BruceRGB, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.4941815566, 0.3204834019, 0.1495550415,
			0.2521531382, 0.6844868996, 0.0633599623,
			0.0157886382, 0.0629304410, 0.7464909208,
		},
		XYZToRGB: f64.Mat3{
			2.6502855519, -1.2014485203, -0.4289936071,
			-0.9787683815, 1.9161414887, 0.0334539816,
			0.0264570213, -0.1361227446, 1.3458542135,
		},
	},
	{CIERGB, WhiteE}: {
		RGBToXYZ: f64.Mat3{
			0.4887179655, 0.3106803433, 0.2006016913,
			0.1762044365, 0.8129846939, 0.0108108696,
			0.0000000000, 0.0102048288, 0.9897951712,
		},
		XYZToRGB: f64.Mat3{
			2.3706743291, -0.9000405328, -0.4706337963,
			-0.5138849666, 1.4253035866, 0.0885813800,
			0.0052981751, -0.0146949384, 1.0093967633,
		},
	},
	{CIERGB, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.4868869755, 0.3062983720, 0.1710346525,
			0.1746582708, 0.8247540539, 0.0005876753,
			-0.0012563121, 0.0169831933, 0.8094831187,
		},
		XYZToRGB: f64.Mat3{
			2.3638080826, -0.8676029825, -0.4988161159,
			-0.5005940357, 1.3962368994, 0.1047562216,
			0.0141712231, -0.0306399735, 1.2323842376,
		},
	},
	{CIERGB, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.4611544426, 0.2747624888, 0.2145530687,
			0.1625944537, 0.8246451788, 0.0127603675,
			0.0007395052, 0.0094595657, 1.0786309291,
		},
		XYZToRGB: f64.Mat3{
			2.4557999263, -0.8127516851, -0.4788740858,
			-0.4842472428, 1.3730698882, 0.0800791571,
			0.0025631491, -0.0114845685, 0.9267271954,
		},
	},
	{ColorMatchRGB, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.5093438534, 0.3209070885, 0.1339690581,
			0.2748839844, 0.6581314866, 0.0669845291,
			0.0242544692, 0.1087820639, 0.6921734669,
		},
		XYZToRGB: f64.Mat3{
			2.6422874097, -1.2234270342, -0.3930143018,
			-1.1119762771, 2.0590182739, 0.0159613820,
			0.0821698585, -0.2807254155, 1.4559876814,
		},
	},
	{ColorMatchRGB, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.4819159288, 0.2983594615, 0.1701946097,
			0.2637171998, 0.6578813188, 0.0784014814,
			0.0328897965, 0.1351363804, 0.9208038231,
		},
		XYZToRGB: f64.Mat3{
			2.7361047746, -1.1572247711, -0.4071900426,
			-1.1044603031, 2.0142162447, 0.0326406690,
			0.0643598963, -0.2542702361, 1.0957615840,
		},
	},
	{DonRGB4, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.6457711384, 0.1933511036, 0.1250977580,
			0.2783496286, 0.6879702058, 0.0336801656,
			0.0037113284, 0.0179861492, 0.8035125224,
		},
		XYZToRGB: f64.Mat3{
			1.7603902333, -0.4881198010, -0.2536126195,
			-0.7126287845, 1.6527431595, 0.0416715346,
			0.0078207386, -0.0347411040, 1.2447742896,
		},
	},
	{DonRGB4, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.6109052265, 0.1700474809, 0.1695172927,
			0.2629262693, 0.6897177745, 0.0473559562,
			0.0071760901, 0.0122061094, 1.0694478006,
		},
		XYZToRGB: f64.Mat3{
			1.8324784332, -0.4470009495, -0.2706711120,
			-0.6982592716, 1.6213335613, 0.0388866293,
			-0.0043265331, -0.0155056242, 0.9364343966,
		},
	},
	{ECIRGBv2, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.6502042571, 0.1780773571, 0.1359383858,
			0.3202498580, 0.6020710644, 0.0776790776,
			-0.0000000000, 0.0678389932, 0.7573710068,
		},
		XYZToRGB: f64.Mat3{
			1.7827617697, -0.4969847389, -0.2690100880,
			-0.9593623286, 1.9477962430, -0.0275807352,
			0.0859316951, -0.1744673810, 1.3228273069,
		},
	},
	{ECIRGBv2, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.6139416362, 0.1605801925, 0.1759481713,
			0.3050396774, 0.6044440355, 0.0905162871,
			0.0014366338, 0.0800775317, 1.0073158345,
		},
		XYZToRGB: f64.Mat3{
			1.8557998769, -0.4555011574, -0.2832223135,
			-0.9474333683, 1.9068903416, -0.0058625755,
			0.0726703763, -0.1509404282, 0.9936072809,
		},
	},
	{EktaSpacePS5, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.5938913616, 0.2729801228, 0.0973485157,
			0.2606285831, 0.7349464843, 0.0044249325,
			0.0000000000, 0.0419969420, 0.7832130580,
		},
		XYZToRGB: f64.Mat3{
			2.0043819421, -0.7304844249, -0.2450051881,
			-0.7110285485, 1.6202125941, 0.0792226863,
			0.0381263111, -0.0868779875, 1.2725437596,
		},
	},
	{EktaSpacePS5, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.5615039852, 0.2465734157, 0.1423925991,
			0.2464187368, 0.7354128151, 0.0181684481,
			0.0019653125, 0.0441553732, 1.0427093143,
		},
		XYZToRGB: f64.Mat3{
			2.0808961716, -0.6813457013, -0.2722956595,
			-0.6978903230, 1.5897140727, 0.0676044401,
			0.0256313010, -0.0660350492, 0.9566904536,
		},
	},
	{NTSCRGB, WhiteC}: {
		RGBToXYZ: f64.Mat3{
			0.6068909212, 0.1735011212, 0.2003479575,
			0.2989164239, 0.5865990290, 0.1144845472,
			-0.0000000000, 0.0660956652, 1.1162243348,
		},
		XYZToRGB: f64.Mat3{
			1.9099960989, -0.5324541555, -0.2882091300,
			-0.9846663050, 1.9991709829, -0.0283081999,
			0.0583056402, -0.1183781180, 0.8975534918,
		},
	},
	{NTSCRGB, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.6343705500, 0.1852204391, 0.1446290109,
			0.3109496150, 0.5915984286, 0.0974519564,
			-0.0011816722, 0.0555517796, 0.7708398926,
		},
		XYZToRGB: f64.Mat3{
			1.8464880965, -0.5521298813, -0.2766457885,
			-0.9826629883, 2.0044754782, -0.0690396040,
			0.0736477471, -0.1453020500, 1.3018376162,
		},
	},
	{NTSCRGB, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.5989509488, 0.1668711323, 0.1846479189,
			0.2960700792, 0.5934070846, 0.1105228362,
			-0.0001391121, 0.0640390037, 1.0249301084,
		},
		XYZToRGB: f64.Mat3{
			1.9210144306, -0.5087779503, -0.2912195986,
			-0.9697907694, 1.9618732758, -0.0368434404,
			0.0608545603, -0.1226495214, 0.9779387851,
		},
	},
	{PALSECAMRGB, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.4306190335, 0.3415419123, 0.1783090542,
			0.2220379392, 0.7066384392, 0.0713236217,
			0.0201852672, 0.1295503805, 0.9390943523,
		},
		XYZToRGB: f64.Mat3{
			3.0628971232, -1.3931791365, -0.4757516713,
			-0.9692660305, 1.8760108454, 0.0415560175,
			0.0678775100, -0.2288547740, 1.0693489683,
		},
	},
	{PALSECAMRGB, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.4552773327, 0.3675500401, 0.1413926272,
			0.2323024942, 0.7077956033, 0.0599019026,
			0.0145456847, 0.1049153722, 0.7057489432,
		},
		XYZToRGB: f64.Mat3{
			2.9603943951, -1.4678518996, -0.4685105417,
			-0.9787683815, 1.9161414887, 0.0334539816,
			0.0844873893, -0.2545973158, 1.4216173887,
		},
	},
	{ProPhotoRGB, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.7976749444, 0.1351917015, 0.0313533541,
			0.2880402379, 0.7118740972, 0.0000856649,
			0.0000000000, 0.0000000000, 0.8252100000,
		},
		XYZToRGB: f64.Mat3{
			1.3459433009, -0.2556075093, -0.0511117659,
			-0.5445988695, 1.5081673177, 0.0205351416,
			0.0000000000, 0.0000000000, 1.2118127507,
		},
	},
	{ProPhotoRGB, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.7556032650, 0.1127849158, 0.0820818193,
			0.2683379631, 0.7151267655, 0.0165352714,
			0.0039100032, -0.0129187251, 1.0978387220,
		},
		XYZToRGB: f64.Mat3{
			1.4032152563, -0.2231400879, -0.1015529667,
			-0.5262715707, 1.4816611110, 0.0170313352,
			-0.0111904724, 0.0182300466, 0.9114427061,
		},
	},
	{SMPTECRGB, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.3935890810, 0.3652496557, 0.1916312633,
			0.2124131548, 0.7010436940, 0.0865431512,
			0.0187423372, 0.1119313461, 0.9581563167,
		},
		XYZToRGB: f64.Mat3{
			3.5053959747, -1.7394893607, -0.5439640269,
			-1.0690722073, 1.9778244814, 0.0351722302,
			0.0563200148, -0.1970226122, 1.0502026283,
		},
	},
	{SMPTECRGB, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.4163289832, 0.3931464244, 0.1547445924,
			0.2216999424, 0.7032548677, 0.0750451899,
			0.0136575725, 0.0913604449, 0.7201919826,
		},
		XYZToRGB: f64.Mat3{
			3.3921940213, -1.8264026956, -0.5385521547,
			-1.0770996003, 2.0213975451, 0.0207988652,
			0.0723073349, -0.2217902388, 1.3960931888,
		},
	},
	{SRGB, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.4124564391, 0.3575760776, 0.1804374833,
			0.2126728514, 0.7151521553, 0.0721749933,
			0.0193338956, 0.1191920259, 0.9503040785,
		},
		XYZToRGB: f64.Mat3{
			3.2404541621, -1.5371385128, -0.4985314096,
			-0.9692660305, 1.8760108454, 0.0415560175,
			0.0556434310, -0.2040259135, 1.0572251882,
		},
	},
	{SRGB, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.4360747037, 0.3850649019, 0.1430803944,
			0.2225044693, 0.7168785946, 0.0606169361,
			0.0139321786, 0.0971045357, 0.7141732856,
		},
		XYZToRGB: f64.Mat3{
			3.1338561455, -1.6168666648, -0.4906146409,
			-0.9787683815, 1.9161414887, 0.0334539816,
			0.0719452921, -0.2289914195, 1.4052427018,
		},
	},
	{WideGamutRGB, WhiteD50}: {
		RGBToXYZ: f64.Mat3{
			0.7161045686, 0.1009296010, 0.1471858304,
			0.2581873615, 0.7249378300, 0.0168748086,
			0.0000000000, 0.0517812736, 0.7734287264,
		},
		XYZToRGB: f64.Mat3{
			1.4628067131, -0.1840623414, -0.2743606446,
			-0.5217933154, 1.4472380634, 0.0677227459,
			0.0349342111, -0.0968930006, 1.2884099024,
		},
	},
	{WideGamutRGB, WhiteD65}: {
		RGBToXYZ: f64.Mat3{
			0.6783443121, 0.0830145673, 0.1891111207,
			0.2404958896, 0.7303774352, 0.0291266753,
			0.0035183144, 0.0552567536, 1.0300549319,
		},
		XYZToRGB: f64.Mat3{
			1.5298412589, -0.1529595791, -0.2765433008,
			-0.5046114044, 1.4225434488, 0.0524182405,
			0.0218441996, -0.0757891357, 0.9689546388,
		},
	},
}

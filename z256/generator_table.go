package z256

// generatorTable holds the fixed-base precomputation for PointMulGenerator:
// generatorTable[i][j] = (j+1)*2^(7i)*P1, affine, Montgomery form.
var generatorTable = [37][64]PointAffine{
	{ // i=0
		{X: Fp{0x22e935e29860501b, 0xa946fd5e0073282c, 0xefd0cec817a649be, 0x5129787c869140b5}, Y: Fp{0xee779649eb87f7c7, 0x15563cbdec30a576, 0x326353912824efbf, 0x7215717763c39828}},
		{X: Fp{0x08fdf2548f0fde68, 0xc80ddebf804d6dd4, 0xc8cef5282905b7ca, 0x6007e08434132464}, Y: Fp{0x01040281962daca2, 0x859cbbbe896409d2, 0x5f0dd9b74b059e38, 0x00c02ccfabf00fd4}},
		{X: Fp{0xd639f4da2ba9262d, 0x23e5f3f9a70c8fd6, 0xab4697e1d0e8c5e0, 0xa0663cf1a436f5c6}, Y: Fp{0x72281e47cca7df95, 0x9f01c3c499b98bbf, 0xbf79ad9f429e3486, 0xa6cd056f7db1f955}},
		{X: Fp{0x5cd48f44d9403d0b, 0x731e1dc86da9d4df, 0x8ae76f31fc7d8f65, 0x21f9cf978bb691ce}, Y: Fp{0xf3a7590e9011466a, 0x60ebd02aeb6cd02b, 0xa08e8240ce02ebb4, 0x962ec08aba7bcbb2}},
		{X: Fp{0x188504576c7e36b6, 0x36fc9ceed1ff4373, 0xb58dd320e45c34b6, 0xa85c4942bfc0dc1d}, Y: Fp{0x80966e8fa07afb35, 0xdb5644c60bc8d931, 0x341e543d07aab002, 0x86f4fdf6047cba4e}},
		{X: Fp{0x5e8604d7187a481a, 0x0a844a42ceaad18e, 0xdcffe135542b1363, 0xb4900e682b176e27}, Y: Fp{0x6443048ff390ebd0, 0x5eb78d37667f73cd, 0xf3365e741aa0dff9, 0xa085fec18708f27c}},
		{X: Fp{0xcdec1c2e871d217c, 0x3bd618348faede2b, 0xa0a67e1c0600d015, 0x6974b0e5470ec851}, Y: Fp{0xc5ac647f30089239, 0x63f6287694bc7c7d, 0x57c7ad542e0c3157, 0x58a5d84fd3e48dac}},
		{X: Fp{0x5fd18a1da828ef1c, 0x57d0e84d16e734a8, 0xb972662986877ef3, 0x0b2433575b138afc}, Y: Fp{0xf2b5555457385be0, 0xb407842080138e45, 0xcb4702f7f9324e3e, 0x5709d46e0dee126e}},
		{X: Fp{0x2e87a4fd66dbfa2a, 0xfc336428afafbd0e, 0x6ca2f5a0ed872d0a, 0x22d5219ce0e54cc3}, Y: Fp{0x85d6407fa66680c5, 0xe2b8157afc7d11ed, 0x518642197aa15b1f, 0x926a5d080be38164}},
		{X: Fp{0x3f30425c6c686bef, 0xfae91cff99834215, 0x10f6965c15cffbb3, 0x9b08b457b4afcfa4}, Y: Fp{0xa7bf3dfb684bc8e6, 0x0384fc246c0154c9, 0x602dfeafded1cfaa, 0x4c0fcd9659688d26}},
		{X: Fp{0x5cceceb778aa3015, 0x4d2c3f251de63d6b, 0x55a1f4129de14a74, 0x73145f4c143b5a1f}, Y: Fp{0x57b6d895db65605d, 0x539c1c0f8652b701, 0xc8abdd4cdf8c0f82, 0x24e84e2506c3de87}},
		{X: Fp{0xd63b6e9a157a086d, 0x31d4a4a717fa3f10, 0x2011a14e11bec5f3, 0x4314286e9f512df2}, Y: Fp{0x6e9947bad23efad9, 0xae59b59e83beda87, 0xecb29b2e1a10ed9a, 0x08b417dbde0af2ee}},
		{X: Fp{0x9c94bbe834caf066, 0x308a960eddba6033, 0x40bcc4fed39dad4d, 0x7ae8acd393b65f57}, Y: Fp{0x362cd6656a0f9f1e, 0x61d30ad23f303b51, 0x93831b8da34a2849, 0x69ae1208895b8c88}},
		{X: Fp{0x8d2f94c8b94d2312, 0x008daafb5e3d780e, 0xb31db078262aac2c, 0x6d6f7c9f80a6a09f}, Y: Fp{0xd057ac97662988a1, 0x784fe358d57cc351, 0x5bf11170a562d76b, 0x21881bf608bb53ed}},
		{X: Fp{0x072012e9da9ff267, 0xa913a67acbd2701a, 0x6fe442ac89f57d8b, 0x242f8f1b2fcbc365}, Y: Fp{0xb131304d74c12981, 0x0664f6a108ba60a4, 0x8c13788a857da145, 0x6e5485c2a9a632a3}},
		{X: Fp{0xb94ec9f25e999b33, 0x0239f89323d8096d, 0xa96fe15528511c6d, 0x0647fff7be106bce}, Y: Fp{0x35f9583d18c8e8bb, 0x5fb6e872ae4193d7, 0xc364fc8a74a83376, 0x37ac61440ef4669b}},
		{X: Fp{0x61beca94a051fe20, 0xcb304771a4625194, 0xf92b1be7c50976b6, 0xa4d3b2bcde9b3cf1}, Y: Fp{0x307b97c789ba544c, 0x1ea4caad505aa289, 0x9a598ddc97eaf58d, 0x4791ad30c56abecf}},
		{X: Fp{0xb0bc1f801ee09e0d, 0xa2fe4405ba5d2867, 0x100ea91264e6ff07, 0x53c916efef92010a}, Y: Fp{0x0b2b82c6d66774ff, 0x198479dd80cdf9cf, 0x4cc923a369e2e3bd, 0x16fde662542f0957}},
		{X: Fp{0xbb200bc435ff68bc, 0x9c154750f25176e4, 0x4582ecbb44688c13, 0x4a0c1e551725edb2}, Y: Fp{0xac1cccff7642b7ba, 0x8e9cfccd761b1022, 0x36b7ee7f6648c3cc, 0x997b1eda147df8f1}},
		{X: Fp{0x4955a51b1c0aaf92, 0x388bfbba36a774c9, 0x824e32c840999fa4, 0x68646006beadc43f}, Y: Fp{0xb08439b7bdeef3b5, 0xe3542e81a54d203d, 0xf4af40fcdbc1a0d5, 0x1db323be19ecb4d4}},
		{X: Fp{0xf2efc91ea4c6c757, 0xf87fd969d39fd8fd, 0x6c7121493dbbae33, 0x5dcad08d8090e57d}, Y: Fp{0xbe3461a913c715e3, 0x01b113684d7f5e81, 0x2ebdf039c560f08f, 0x12a798d7d1255da4}},
		{X: Fp{0xf64aaa718531ae0c, 0xa84d6daa857c042d, 0x9057149b314ef3ec, 0x6a7834de14358062}, Y: Fp{0x470d784715eb0d76, 0xe7870a061df7ae29, 0x800b9c9a5077f2b8, 0x8e577115884871e5}},
		{X: Fp{0x6092a6f046df1fbe, 0xde2a2173f5b4c8fa, 0x418fcf740e310241, 0x032a2e20a5b9fcb3}, Y: Fp{0x4a79c6be2141c721, 0xd831bdba8c99042c, 0x6f5161b42400e098, 0x497a0ee550094233}},
		{X: Fp{0xc1326565131815d2, 0xe21039a97ce3bde3, 0xfd1f71978a78af33, 0x39a4e269242d1d10}, Y: Fp{0x3178294f15843d11, 0x8d0ca521bcfd5947, 0xd56dc4eaa3b0fe75, 0x729c3951cbf9fcc3}},
		{X: Fp{0xff2440ddd3cd3d6c, 0x1ebe6eafde08d3ab, 0x0c1bfb548a4f7075, 0x14028581ccab8d1d}, Y: Fp{0xc38e9170bce3c926, 0xedcddf06bbd9812e, 0x8def71127a6b0e11, 0x5c3e86d8879870e6}},
		{X: Fp{0x7a299ce4af1bfd1d, 0xc1b2c8bdc1771396, 0xf3079094d7f8c2cd, 0x421ec9a8397a3039}, Y: Fp{0x0a89acb19bef374f, 0xab9f3fe4118af649, 0x3ade43c7e4c826bb, 0x3ab034f0b0522120}},
		{X: Fp{0x3d9ace0e23cbc2b1, 0xfd99d92188862f04, 0x860534c8b8cd12ef, 0x3438dd2c7e74eb9a}, Y: Fp{0xd0f5576325b4bc2c, 0x1bc00e4adbc1656f, 0x0ab7f27749522c73, 0x542982dd0bc79eb9}},
		{X: Fp{0x3dfeeb85e8fb317f, 0xbc6c7dd13b67f7b8, 0xea7bad309292d843, 0xa61830c6889be63e}, Y: Fp{0x6d4bd283f4bb2647, 0x204bbb223560c99b, 0x38cd104e437e5ea0, 0x9e2ed2bffdf75fa2}},
		{X: Fp{0x601091cb399c1601, 0xb5b62433696fb573, 0x2c5e7d7eba2d8623, 0x27a187a121294910}, Y: Fp{0x5168a13b8d018405, 0x7352467d967e2e37, 0xd2eadede8302804b, 0xa272d5201aba0878}},
		{X: Fp{0xee19230495719841, 0xcd09754ac976a3f3, 0x77957b56212ed7ce, 0xae8bb7df2da52515}, Y: Fp{0xf489c45dc2c61849, 0x2aaab631ea89b257, 0x4f2fbe65c050cddc, 0x2b9e58e536bf674f}},
		{X: Fp{0x2314821f15efac4c, 0xde620d0f25ee19de, 0xc98a7df943b729fc, 0x926a27ef7329a173}, Y: Fp{0x43b401e7558c3e42, 0x449d8cb1b8a9d983, 0xabce9a41b485a638, 0x3ccdb0ac946cfb1c}},
		{X: Fp{0x21170bbe6cf7d7aa, 0xb732adc0b0f317d6, 0x600977b06f7aef4b, 0xa27823caacb252fc}, Y: Fp{0x9bd50260c5c8109a, 0x0222427293bc7c2d, 0xeff18dd519a4eb9b, 0x1a50e4a45447158c}},
		{X: Fp{0x340c2164185020fb, 0xc2ccb17305b79ef2, 0xb8752a4d3d12fb1b, 0x204f02c5308edb8d}, Y: Fp{0x78f46a47bf17ec28, 0x5750b4d70e82fbf7, 0x041ac5ea0779a047, 0x255b454509e9b998}},
		{X: Fp{0x4fc3f4f25695963b, 0x859feef5dec2e19e, 0xc02f353e502840d4, 0x006ee120019ab40e}, Y: Fp{0xe0653de21ae83ad8, 0x869e4ea9beb54c8d, 0xa0baaf200cbb9834, 0xb3a064601e96cf6a}},
		{X: Fp{0x32f95f792bc93a05, 0x09c5cc322d63d791, 0xb09f75b583ba7ee8, 0xad15ec4370f42dd7}, Y: Fp{0x79407e7ac1738707, 0xf3f6b4a3a9881b2c, 0x93b999f3255830ab, 0x0cd65570bb138f39}},
		{X: Fp{0x0aa3ff74fc80fec7, 0x83ee8acd0ea76c40, 0x0631bfa9f23ae8d5, 0xa9d2525b07b3340a}, Y: Fp{0x5de7391ce7827235, 0x32b81f5c31707608, 0x0e27f81d04ea076b, 0x5364e54f7b765984}},
		{X: Fp{0x09fe756374e4cab4, 0x75dc0a5f545c688b, 0x38403cca8e80597f, 0x0d9a27d9b3927352}, Y: Fp{0x7eca108609c533fb, 0xee3b1f1e8921af87, 0x2e602b2824defe32, 0xa3bc9c38991c2378}},
		{X: Fp{0xbe4060d4acf69d04, 0x84ff07d6f31a17f4, 0x9f694a5cc024093f, 0x31b7a16168b0cdb6}, Y: Fp{0xad55d7b84d92be25, 0x97c1e4df4eeb03cf, 0xb9a15637fca0916c, 0x098028696c34e6a7}},
		{X: Fp{0x259aa7f4a0f4ca69, 0x67b5a55bb878961d, 0x35ecd2e89ade4d2c, 0xb09eb0ef1c4d3abf}, Y: Fp{0xf1203efa38516764, 0x60f1c3aa3afa3ea5, 0xe1c5f76fac5ad50a, 0x1a67cda4bd3a59b3}},
		{X: Fp{0x8e9a3a52f706bd6c, 0x25e5ed46b23e0414, 0x192f77f3b6f74417, 0xa9ede2908c1daf5c}, Y: Fp{0xb25bb8f33935cddf, 0xc4ee384295302fc2, 0x358604bed5276f58, 0xab2f2a57ca2e49a7}},
		{X: Fp{0x63947ea80c9315d4, 0x32ef230521add8ec, 0x5ec64f0453964eed, 0x0ed2d538c4f7f9f2}, Y: Fp{0x38c6bb8486c6a0b5, 0xddecc7b69a928347, 0xbb1a3cd507c5ae5e, 0x966eec26dc0d20d5}},
		{X: Fp{0x9c60080ff8bdc5c6, 0x2f3308649f782332, 0xf04611db96c4518e, 0x8518b17dd3c5f56a}, Y: Fp{0xbb84525a891adf1b, 0x2eaf551625f0b98e, 0x7579c8824b93868b, 0x92e38bab9fbcacd5}},
		{X: Fp{0xc469328607be61e7, 0xa883dc274119f92f, 0xcf3956e0de48a45a, 0xaf572eb0defdf4a4}, Y: Fp{0x392bba2405f9e1ef, 0xd1159d255a0e4fa7, 0xe643910ea34907ee, 0xb5f0ad7f4fd0aa4d}},
		{X: Fp{0xa86b56e8d8dfd4ff, 0x9dabf9491569a3ce, 0xfd3e771add7403c0, 0x35e46c8fe9a6c844}, Y: Fp{0x8984352882bf8791, 0x45b7a8d0770131ca, 0x47e1516bcd909522, 0x7956ab6b6eb3376e}},
		{X: Fp{0x5e9ffda5658e9c88, 0x47a40f7847f01eb3, 0xd3eb1f6ab93fea44, 0x00faf88a6a3efba2}, Y: Fp{0x77f8c57efffa1a9c, 0x6ad7dabfe123db7b, 0x950ecf21599fef0b, 0x90736f67bd9f05b1}},
		{X: Fp{0xc54ad447c665f211, 0x2892250df020b418, 0x3a0871f0f10d29d6, 0x3619999527770353}, Y: Fp{0x3dc4d46f0c44b620, 0x1d10eea8a16a27af, 0x76c106c9b598d0a3, 0x915cc3ac51fad29b}},
		{X: Fp{0x757a71548f4abd2a, 0x3a89364a089ad23f, 0xf034299f2393cb5c, 0x7e4178d9aab59992}, Y: Fp{0x10bcf09fc1725754, 0x80df63d617daae13, 0xa6c4dd31c59e37c4, 0x8230a691540a76aa}},
		{X: Fp{0x6e0d5e98558002f4, 0x70e40637c0c07dbb, 0x3c5d21d037395aec, 0x3823c9ca6ce684e1}, Y: Fp{0x62b5b6d3bc1f5108, 0x6c8ed614c823ba86, 0xb118f32016d22ce4, 0x798ff118c53271eb}},
		{X: Fp{0x73b37c091cac9ddd, 0x44ad93e8fbf93b41, 0xab6760351099c662, 0x81ce6454bbb2d15f}, Y: Fp{0xadd9bbc1c3b651df, 0x04e6d9af28de16bd, 0x4047609ebe6db723, 0x1fd89705c05cf335}},
		{X: Fp{0x0f4e4aef187da711, 0x2ad436015d79e2d6, 0x1b6af5c69a6f22a0, 0x749f9d871b3f239d}, Y: Fp{0x604f2f8ff12ac64e, 0x3c91387f3cb2da13, 0x9819001284e0140a, 0x668191f1bddd64ca}},
		{X: Fp{0xf6af743e4154080a, 0x3b19a024b172ba0d, 0xbb12b311c269435f, 0xabf92573de3a4646}, Y: Fp{0xd44cc79cb63a3b48, 0xa7e852eaa8a4a518, 0x8d67f5d327ea2517, 0x222aa1d77c21d1a2}},
		{X: Fp{0xed5c6fc52f420336, 0xac03ab05343528e1, 0xaf4773f43e2b081b, 0x5ea5e97ecf240f0e}, Y: Fp{0x3bab3388f7fe2400, 0x94b565559640d188, 0x221d68e4d66021fa, 0x020598b8d8e03ef6}},
		{X: Fp{0x7c473975ab494aeb, 0xfb93a526eeecaf5d, 0x1484e7c6d83abf06, 0xae5ad2aea5eec469}, Y: Fp{0x88beea64e88a7e4e, 0x97700a761f143c3c, 0xfc6d9cef8869d50c, 0xa7c1b52291c2869a}},
		{X: Fp{0x2265db100db8edea, 0x58527b086deb0b76, 0x2b8610b25ba00c6b, 0x2a561a9fe990411c}, Y: Fp{0x316e9f8ec5885273, 0xb31fff2d01abbae6, 0x6127fccc3edbb3c2, 0x95ed53b20471f5f3}},
		{X: Fp{0xe19b182f48064e40, 0xf0aaabac69a9cffa, 0x5eda4eaebd80e3a8, 0x9d51c3bd41b463e6}, Y: Fp{0x61748c58d78c9c2d, 0x7cfcda0e896504b1, 0xdf9d7ab087ef9997, 0x62a79aead26cdc10}},
		{X: Fp{0x236b9da178a6cf82, 0x938923a0bb9241e5, 0x200bd180b9c7a410, 0x0364160954e1c164}, Y: Fp{0x4ba285bca3862129, 0xa6a2ca83cc096a82, 0x3ef8be8ec6432599, 0x1337f1f5f003882c}},
		{X: Fp{0x8e2406b89298a2df, 0x6e15108110951cce, 0xc6d7d3023635f525, 0x73abeb06401fbb46}, Y: Fp{0x7a7d1531f51ee377, 0xe576fd9ca0c3f1c2, 0x429e08b846f401cb, 0x48e05d75ed8ffcdf}},
		{X: Fp{0x06d81924f6d8d2e6, 0xcbfd35aee97aff2d, 0x7dcc4f1716895759, 0x2085a77508da91df}, Y: Fp{0x8fa20f737f20e0c6, 0xbe9c5db431b78c5b, 0x0a2d263edd5fb69a, 0x8644e5ac9cf66a8e}},
		{X: Fp{0x7970ee4a61a0a705, 0x8e27f4a457b58ed3, 0xad899ce616da76ee, 0x3efa9c2468c2378e}, Y: Fp{0xf6c27e7c4f94ea49, 0x6ef246f43ac6c820, 0x7a9fb0e4a0165aad, 0x74a4a5dcf1cc8b5a}},
		{X: Fp{0xbe51061d6a434cf6, 0x1d379f6000872977, 0x6e04682ba32d3611, 0x062f03c434ef8edd}, Y: Fp{0x3cac44046f262adf, 0x5b0a818ebda0d76b, 0x7ecc810e8d4861cd, 0x7ba964a6e089a765}},
		{X: Fp{0xca02cb080491933c, 0x0546ac4349614f35, 0x801cc5134b9aa8b0, 0x3f61e173d73c2f83}, Y: Fp{0x51a9497464e863ab, 0xf0dc5c8ffa01eae8, 0xba872ed11241a36c, 0x719cdd2e95a29e4d}},
		{X: Fp{0xec02b78142266276, 0x6a7e955b48b17bab, 0xc97677c58aa3fa37, 0x9bd4147af7a80031}, Y: Fp{0x519b87e263a2d6d1, 0x07b8b2e48e4766b5, 0x5bb08fc4d558b767, 0x020772344bbf4e1a}},
		{X: Fp{0x4cb6e8a13c8b0cc4, 0x099344a1ceb4da8a, 0xd35502cda496f312, 0x7e4deb13320edc30}, Y: Fp{0xb2d65814594af82c, 0x215deed73866c2f1, 0x833f3fbf11bf9939, 0x3742efec569d9b75}},
		{X: Fp{0x7b736d6d53ccc3bf, 0x39b8f806657f621f, 0x0f1e7cc214ae93a9, 0x90e5561e85ac120a}, Y: Fp{0x6801416e60008680, 0xcbcf6572eeb70861, 0xee8ce5145fdfd8ea, 0x8b778c3fb0e959b2}},
	},
	{ // i=1
		{X: Fp{0xd9bb70e386b14a0e, 0x23acdb97479d78b6, 0x2143e329dcc8905a, 0xa8dcbff7561c9de8}, Y: Fp{0x3108554c9afb543e, 0xde29d480283f70f9, 0xdddb89c217d97c0d, 0xb54b53e9cb472166}},
		{X: Fp{0xc9f073a2e5ef5bb1, 0x9cca2028e2442780, 0x30b93642a2f563a0, 0x8e16af6a731ca246}, Y: Fp{0xb8f523645299d6e2, 0xd5f6caa3cfe00403, 0x660dbd317e86baa9, 0x5d52f3860cca65d1}},
		{X: Fp{0xdfb947add4b1f42b, 0x41fbe6982a65bdfe, 0x1f2663f810e5dad7, 0x47dd6f7a71af44e7}, Y: Fp{0xbb231504bf2f738a, 0x8924e91c7a29d2a1, 0x6cbe3d33116a40bd, 0x489b955fb8fad09b}},
		{X: Fp{0xcbc4c7ed13d7c190, 0x1bba84555aedadae, 0x9827e3526f73be09, 0x3dcddb910d8e79e6}, Y: Fp{0xad203a7db7e82598, 0xccf1eea4f4e4844e, 0xdb9ac3537dd9cc8d, 0x17d25eaba799e523}},
		{X: Fp{0x89d8edfe651536e8, 0x2790d0b2a7976b05, 0x90b5fa165bf7b40d, 0x2ea05eb90f900803}, Y: Fp{0x9eec3ab675c94b77, 0xc0967316ffebfd1c, 0x20d59c352f1e4393, 0x23fd5f3c41e8fccb}},
		{X: Fp{0x47c5f4f060d637d7, 0x338af331882addf1, 0x097b912d0688b31d, 0x55da592db6869503}, Y: Fp{0xec227cdf4c99faad, 0x618aecf6277bdd6f, 0xe4440863fe23c857, 0x1aea889dc19593b9}},
		{X: Fp{0xa0109e22ecb2e791, 0x20350c2f91f541e1, 0x744d2dadf9e26715, 0x3d77d2493ba108d2}, Y: Fp{0xe29bed9980ab8bfa, 0xdcccef5ccc9ab594, 0x318646df5423fb38, 0x7c7ddcb559aa7c50}},
		{X: Fp{0x1484f25924465ccc, 0x9607d9f6cd9a0c25, 0x9ae2986f4e70b7fc, 0xa9c5b936e7966afd}, Y: Fp{0x293b9f9cab4b4fe8, 0x537d617181f87ccb, 0xb289f81b9215dee9, 0x9b164d6763bd7830}},
		{X: Fp{0xb33b38081cf1cf4c, 0xd58b4dad663fc392, 0xdc20b366a15011dc, 0x4e6a585e82c07ae1}, Y: Fp{0xfaf1a2f3c72037b3, 0x2eb00fbe55e36b5c, 0x51e9605ffb66cc40, 0x87bca35173c51a07}},
		{X: Fp{0xf93b782ce55a6214, 0xa83cc1a58bc4b6ea, 0x1f73eae1b75ed32c, 0x4e11442f6ecee1d1}, Y: Fp{0xd4e00fb6913cce76, 0x51886b1e773611d8, 0x00395004d8e7eade, 0x821c228c05587cf7}},
		{X: Fp{0xcf3fa59942b3015e, 0xcbf55a1052c05bdf, 0x824d10f1f78396ab, 0x7090fea81b1c5174}, Y: Fp{0xe2b33ad29ee147b4, 0x8036d1de5299063a, 0x0c2c283515896a66, 0x8a51d8b98897a06f}},
		{X: Fp{0xf6076d522be5a227, 0x683d95f83a7c828f, 0x927bf0ef91dc4a51, 0x978d1b571d41c55c}, Y: Fp{0xb8394cd0a16abec9, 0x84f9c18276e64dbf, 0xaa9c86d287d66a4c, 0x10515dd2c4b6d14d}},
		{X: Fp{0xf4c7c43c42f444ec, 0x50926dd67d4629a6, 0xc602bee1d29cdb2c, 0x6fdb20a2f12e0bef}, Y: Fp{0xd5137d60ef033b12, 0x930dd6e0eb1edca1, 0xb62282f6a3764b79, 0x05f5fbaa984b7ed9}},
		{X: Fp{0x577b5e26aff96188, 0x2dbc299c6ba1581a, 0x644cc85abd3eb555, 0x185c21ddebf6ad20}, Y: Fp{0x493a6f301e03c4a5, 0x698919a13cbfc5ea, 0xe134a004088ad2c8, 0xaf72a8f74891bb2f}},
		{X: Fp{0x11d9e6b4f4dd5421, 0x8c8cca63ba65aeab, 0x3c1fbb343f667f25, 0x0e49fc9b94487e2c}, Y: Fp{0x06504e7819084f75, 0x97dbe0e4fe775e43, 0x3e91930942e42e83, 0x5bb61fa746bf6ebc}},
		{X: Fp{0x8abaae2624967725, 0xd66be8b93d66d770, 0xb67a34a217eb4130, 0xa9225aa473f3b580}, Y: Fp{0x46cbbd691faa1521, 0x44a8ea06ef22a9f7, 0x53cb2352c3f55ae7, 0x009e0424f02c8bdf}},
		{X: Fp{0x552ecdc2c93652be, 0x6d7552293cc4f6d9, 0xe7c54c9b94e6be54, 0x8a4ea774b1394c52}, Y: Fp{0xb844be26a4700a06, 0x7617c36e1cd26902, 0x787c12ecee5f183f, 0x4b086c4571959aa1}},
		{X: Fp{0xeeaf3e375ae92728, 0xa793f403228d2adb, 0x93283a2f4dec620b, 0x231edfcc083e255f}, Y: Fp{0xd91b0b78597ea801, 0x2915ca17a0846b0e, 0xc1d32e878cc8c509, 0x7cdd8cb96ebcae4d}},
		{X: Fp{0x504a05d2d8d10b71, 0xec0091bef23b2020, 0xfbf8623f98eaacd6, 0x84a682d1a1322988}, Y: Fp{0x32377f0267b99eed, 0x884e52277d1284df, 0x40a3bdf5b0ece573, 0x0f950adeb71e7030}},
		{X: Fp{0x747f4f308941befb, 0x56111c02053d4c17, 0x9f28247ed807bbc2, 0x4e74ba068a8c9d86}, Y: Fp{0x31317329b20927bf, 0x7bf4ec83b56e9f78, 0x0c14d0535c796be4, 0x6cfd3fbf2d9ee943}},
		{X: Fp{0x503c304377bab286, 0x32a8de28d1b54250, 0x915a0f565f73031e, 0x490d99ddb482b192}, Y: Fp{0x979ba7396bb060ff, 0xea1a4a8cfd9aaa07, 0x3dae1fbde2807cb3, 0xa863c43d80dc0530}},
		{X: Fp{0x8726e711565eda30, 0x251e4b0f5541754f, 0x3ac9b69fe1a1bcea, 0x54cf736c6d23fd7f}, Y: Fp{0x5de645eacdf5639b, 0xd1982a7be79df36c, 0x022963b114594788, 0x09289ff4a399f9aa}},
		{X: Fp{0xd51a41a0cee12244, 0x0e4e8fd6829d190d, 0xdd7695e42a6fa237, 0x9e49e4c303416414}, Y: Fp{0xfd3beb0272ab52fb, 0x623f8ae387e6cf9f, 0x240049e92330c20d, 0x52f3467088bf53f6}},
		{X: Fp{0x2021507d47056c48, 0xa218931c6d1400b9, 0x09826b63c441b240, 0x290676a83b4b5ee5}, Y: Fp{0x410423d94a7c486d, 0xa8a64871a63a689a, 0x83961b0b85377ea0, 0x2cad4d4d3c04af19}},
		{X: Fp{0x2d1ffa40eb276855, 0x8e2720d368a66e22, 0x2d5a821ebc76b384, 0x77a4276a5804d2f0}, Y: Fp{0xc6979742e677b74e, 0x868d6b9930933612, 0x5da3b78f42f265f8, 0xb61fd4523337d15c}},
		{X: Fp{0x48fa7705fe391a6f, 0xa1752b1e2cb12d55, 0xf2fd1dce225b20eb, 0x20223864254bd408}, Y: Fp{0x42a148ea12d33d35, 0x3552e87397d6caac, 0xbcad30e5bed297f2, 0x609306189fb7013c}},
		{X: Fp{0x620e6d7ce548aeff, 0x7e9112b2c6f5c808, 0xe9239f88d6909740, 0x16b3c9e87aee99de}, Y: Fp{0x76ff119c39dae5e4, 0xa62819eaeac3ab0c, 0x12bbfab9761c9903, 0x2f5547720b62e608}},
		{X: Fp{0xfb1113a2f702dd8d, 0xc2b932f8cdd87cd9, 0x4c08a5d83e4b987d, 0x7ed0aba9b596ed5b}, Y: Fp{0x9f8bcd063b91263b, 0x932a0a8b4df5f6fd, 0xa9d72944b7c7086e, 0x302d8e3c8af75726}},
		{X: Fp{0x9c43ae68f8d80b55, 0x667ebe01639beec0, 0x08adf33b0833ffea, 0x223a2c7d3bae4609}, Y: Fp{0x4aa3ee909fa7b0d1, 0xa4d02f44a0b7de2d, 0x81e72fe0094b99a5, 0xa9405872e0fc5e90}},
		{X: Fp{0x4959df065c38ca16, 0xbcbc68f48b686e9b, 0xe8f42daa09b1862a, 0x3b157ca20dcefd52}, Y: Fp{0x5b63517c1733b7e0, 0xb3ba141ac2852dbc, 0x12085f91706c1b12, 0x6abc42ee95a12d7a}},
		{X: Fp{0x9237d448eb26136d, 0x8089d78096bd6a10, 0x534fa4809c9a2545, 0x5d1fbcd7dee41ae2}, Y: Fp{0x4e2e00d3c5b88176, 0xc29ffba7b01acafa, 0xf0c3d1539e15dfcc, 0x2f03e58f89a486e1}},
		{X: Fp{0x342fabbe18c60a8d, 0x58c3b2b80b0206ae, 0xeee40f219c1cd7e9, 0xa66be6131504df37}, Y: Fp{0x16bddeb1e670eca6, 0x98ad05fd11ca7941, 0xcdacb91061c2e2b4, 0x2439072d2217962f}},
		{X: Fp{0xda705f9314c2845a, 0xb51723f7d42da0b3, 0xc2d998f328bfc631, 0x39ff9dfbf6c778fa}, Y: Fp{0x05c0b942d79465b9, 0xd337917820ca2391, 0x66cce16af8b437d8, 0x80a6981cadce7012}},
		{X: Fp{0x2aba84bf9a94fc59, 0x90a3dcdb51dbc679, 0x573fa512649fc079, 0x78903bff1b226157}, Y: Fp{0xeb47048cc16e9133, 0xb52b67dc100e40b8, 0xa6489e7416a50921, 0x09d6b636704073ed}},
		{X: Fp{0x253866415954dd45, 0x8c3d8718c60ad97b, 0xe1bcd8ac8665dff3, 0x5121b99146f8ac67}, Y: Fp{0x045276b8648b97f6, 0x4e7eeffdaea483cf, 0x59eae050e80e377e, 0x4dc22fd6535574b0}},
		{X: Fp{0x30c22503b2a0b8f1, 0xb4d5dedb02465dfa, 0x57fa64ef87ab9554, 0x1f1253d1cdfb0c2f}, Y: Fp{0xb93aed34324412ad, 0x0377bb914f1ff60d, 0x154d46c67803d18f, 0xa2e40ee604391762}},
		{X: Fp{0x2ef5e122c7f5f837, 0xeaa122e1f9ecb5a5, 0x15ad731596caecf8, 0x1f48289ba7a087ff}, Y: Fp{0x02ec4f29e1f15eb3, 0xaf779a775d3eab04, 0x6a2e77d147c16d79, 0xa4c66eaf7d2250a1}},
		{X: Fp{0x661a930b1fdf89d4, 0xe4c2b692ce058c02, 0xadfc6f2f866c42e8, 0x4cec972ce72316fd}, Y: Fp{0xe81dd966682f33d7, 0xd1af0ef7457a2e3f, 0xb8cd6fb2181a7524, 0x9f6bd58f3e85dc69}},
		{X: Fp{0x5cb56f5860e3cba6, 0xe64d9cc94d3db12a, 0xd2ba6f92c2cdd251, 0x19ff31a6dddce21d}, Y: Fp{0xda814d48bfa2fafb, 0xe7138213aba79eaa, 0x85030807d61658c4, 0x13b11634636a203c}},
		{X: Fp{0x9530a5fa8795ac5a, 0x7092822eab801962, 0x43fad823b197a856, 0xa8a559e4308b0c9d}, Y: Fp{0xda3d16daeabb9520, 0x134f5db79ac76947, 0xe3c943a83ffcc4a8, 0x949c9d473fa8ba6a}},
		{X: Fp{0x4fcc16fcdc2d0b42, 0x29d10826ed2dcf44, 0xc3342c118ed9668e, 0x33917078bdf20cd7}, Y: Fp{0x6d5c944c4ee0985c, 0x692a458f9f2c285d, 0xbd9644c0cf098503, 0x978f4d73f7fec83b}},
		{X: Fp{0x30b68e0fd96ae82f, 0x96dd10851c6b562f, 0xac84977df082222d, 0x1f1e9b052d0ad0a4}, Y: Fp{0x96d8a2e489216e41, 0x9fd3aab7d47a0d0c, 0xdb4498a5f85a50c3, 0x348ff7fee9f70157}},
		{X: Fp{0x75e8c73476df90c8, 0xdc440ff54508cdb8, 0xe0b25ca7f6f92330, 0x8b2b55331eb75554}, Y: Fp{0xe6d2243c86dc6669, 0x5bb888dfd2c3c036, 0x11daef3d4fa2ea2b, 0x9c27c75ae5983a76}},
		{X: Fp{0x13c418df817c2474, 0x43eefdf8db0705f1, 0xa0258b301c669145, 0x2740ea4ba4bbffc1}, Y: Fp{0x77ea6ffa4e378e2c, 0xa22363c30eda9e62, 0x3e78c889c3299555, 0x83f07b222af2c4b5}},
		{X: Fp{0x10860fdac1ef564f, 0x7cd1116dae15eb07, 0xa1e95f61f6aedfc4, 0x095ff90fecf4eaf0}, Y: Fp{0xe75cfc65aacaf1c1, 0x7ef5b6bd281ad800, 0x0402d45a8b95af84, 0x7ffdd4edbfe73604}},
		{X: Fp{0x894dfcba77721446, 0xd7913ef47744498a, 0xedb4c75d3ac13042, 0xb3bd8f16524a5ea4}, Y: Fp{0x1514a2cd1ed3140c, 0xf2f6534181508fad, 0x56af14a3f2efa7a9, 0x1037dce6c1ba1c6b}},
		{X: Fp{0x43426a7c4cc8c428, 0x32d9033c39a50a05, 0xc4907be5c3ebd133, 0x9daaca82f209dcd6}, Y: Fp{0x661dfc57f5db53c1, 0xe826c83f77caf40e, 0x73e19d7eed64da34, 0x401dc75529cc8856}},
		{X: Fp{0x59223f433fc7455b, 0xdef69567e3ef15c7, 0x5f91b176af51df1c, 0x0b807e1ca429ca3f}, Y: Fp{0x3bc92fd9e68ba2f0, 0x5e98e00fef96239b, 0x89103642d8519ef2, 0x7cc47071e978e8d4}},
		{X: Fp{0x38a85685270a11ee, 0x7c5ee2de8d892f01, 0x645c0061db639700, 0x5399aa4becd5bfcc}, Y: Fp{0xd0678680e9097407, 0xdac54b8ebe6f985d, 0x34833fd6c6a6f415, 0x2ae3fe5941a60bdc}},
		{X: Fp{0xbf760b089123c7a1, 0x617f6ccd52110bc4, 0x7b4e8b28c8b82bd4, 0x8144c6484fbc2192}, Y: Fp{0x92ff65a8825047e2, 0x2d1bfa05299501e1, 0xea7da0c37f368fd8, 0x64a3f35485cc9ad7}},
		{X: Fp{0xfbb3afe57f05b575, 0x6183a2e202c6a7df, 0x1a5ff198d69f2445, 0x05be8b07ef1da39a}, Y: Fp{0x314be31f6c2bb05c, 0x463e4c6421bc087c, 0xf6801b4fb004714c, 0x498f6062159f28a9}},
		{X: Fp{0xf84a3a14a2081f65, 0x723761ac21bad1ab, 0x549edd037a46591c, 0x8825c80d7788ba57}, Y: Fp{0x6f34640224029ccd, 0x27133bedc66fe6aa, 0x79e5ab9c5c98d686, 0x3ed3a274f29a210e}},
		{X: Fp{0x80076adb0e3e4c6f, 0x0210c80bb5fbc7dc, 0xd267af8523c68a0f, 0xaddec749e13de9b5}, Y: Fp{0xe92230f2d1db668f, 0x9cc7e861e692918f, 0x62c0fdc7d66157fd, 0x96a55dd9602ed559}},
		{X: Fp{0xe7f14fb7638412c2, 0x15437b965fc956e7, 0xeeb7182b67e39334, 0x33c32e07455ad1d0}, Y: Fp{0xa89c335d12cd3039, 0xd6ce08e1443734c2, 0x1aecc2f77521d5a6, 0x75cf3c7d6b6c52f2}},
		{X: Fp{0x90bf921848952928, 0x57d63efb360eb91e, 0x8fbf2270b0d44b73, 0x844af15993656c76}, Y: Fp{0x5be75998376bc715, 0x2fd1fb9f2d201e67, 0x173c1ee9f083786f, 0x43e8c399e681bc6c}},
		{X: Fp{0xea5f811173a2b86a, 0x09e564e876d56176, 0xc6652b2aa3a5d3e9, 0x2238820d9b2140c8}, Y: Fp{0x6e66b9c9433a6510, 0xfd0a032cf562f9c8, 0xc3e190e4accd3509, 0x8523a16f83d5569c}},
		{X: Fp{0xe3f71b0b1b783bd4, 0x4144961c19ca5197, 0x96e92a34cefbac2d, 0x981f1a77f94186b2}, Y: Fp{0x26a0e7db17273ec9, 0xa08987641a41ee3b, 0xcdd82a7fa0a90a17, 0x43b418d5b39bef01}},
		{X: Fp{0xba243f6b55e51f6f, 0x87df71330aa6025b, 0x170bdaed1b9500f6, 0x10946cd268999250}, Y: Fp{0xe2122711006ed1db, 0xb3cce7895cd8b2b0, 0x2dfcdcad60a189cc, 0xb02fc5c407fd0195}},
		{X: Fp{0x55063b42e4fa0a06, 0xa3e0b950a92debbb, 0x386958446bcc4aa1, 0x12d478f90ed2b0a5}, Y: Fp{0x4d397e841128b7fa, 0xbaccb7cd92a0563e, 0xf6b237eb9de18e15, 0x8193df65f3219195}},
		{X: Fp{0x1932dfb21f324fde, 0xbddbba6043713c02, 0x86fb3c6ec69000db, 0x06391e73017e2873}, Y: Fp{0x56b029f581bbbecf, 0x09090b7282ba5a1e, 0x6df1208f36670544, 0xac1a987037819a05}},
		{X: Fp{0x3afb5ad782fc8a8a, 0xa5af356dd8d3ef9b, 0xc101664c7b5cf881, 0x3dc22dcf70265203}, Y: Fp{0xbec827013df07352, 0x961918f3d4f4b245, 0x47389e943e72e0df, 0x62755cb2d96b2b8c}},
		{X: Fp{0x88da18316763b2f6, 0x1571e5a363339f9c, 0x5a39a3789087ed4e, 0x4e00c9cb2b668882}, Y: Fp{0x46602090c6e95035, 0x278b06babfd9197d, 0x6f2a556b6726c1e0, 0x8cfe19123c67900b}},
		{X: Fp{0x581212f1f618b239, 0xa2dbe22052b51e42, 0x2e9f8f113574ec02, 0x177721d7607fd074}, Y: Fp{0x519e927aac76f28a, 0x2176a5aa222598e6, 0xa0d354561c439549, 0x678cfacd414c7b63}},
		{X: Fp{0x0d4be5422d833b57, 0x1809775ae1e1ef83, 0x68f903ead1ddb4fb, 0x05105b6d8014145b}, Y: Fp{0x908c97c1dfdf9079, 0xa0bb3a7b468040bf, 0x0e0a3fb749ac374a, 0x4c38098196b5275b}},
	},
	{ // i=2
		{X: Fp{0xeb22e9068bb438da, 0x8e5d1ed94a0b6bb8, 0xf0c09a7ffcbb62f1, 0x91a1b71494275165}, Y: Fp{0x52b8bdb5cf17fba1, 0x3b5f1856ec72ec40, 0x14a515ffc7fa3d8a, 0xb03d05fcafcdce31}},
		{X: Fp{0x121e778682cf4bfa, 0x50df6ccce719bb90, 0x20f946e1a667257b, 0x7292ddfc2011d02e}, Y: Fp{0x54c5ec7ebb154911, 0x375b996443896ef0, 0xf550b51a42df9de7, 0xaf5d8c049e58ed2d}},
		{X: Fp{0x38842689435000ab, 0x77ff799bfed36884, 0x264e5a8a2ce1b66e, 0x28161ef0ed28d0aa}, Y: Fp{0x475f35693d01fd9a, 0x06c8a32d409a4430, 0x0d689cdeb3f87015, 0x54f9fec44cde5ec6}},
		{X: Fp{0x9762b68a7c8e5125, 0x7b187eb90cdab734, 0x2ad8a06126ae9347, 0x889fa5a4b649b12e}, Y: Fp{0x7968de49c1969c71, 0xc92b875ffaf5ddf4, 0x975ca59c19a8ffba, 0x528f495916f14557}},
		{X: Fp{0xf3351c551577c200, 0xf1edac5ccd9b4166, 0xd1ce6bf00778789b, 0x4a0403fb6eb0ec08}, Y: Fp{0x1793c7e867007b5c, 0xe68525a3c74deaf4, 0xd317ac78fdc05f41, 0x08b61d677149cad7}},
		{X: Fp{0xb801c8005f5c7d8b, 0xef5b4041954fb4ab, 0x96c980214b1ecb5a, 0x25327b50ee1c4810}, Y: Fp{0x9de0ed52853580d1, 0xc4ed0cb38d228abf, 0x33b7993741e130df, 0x7f5f05ce1db25176}},
		{X: Fp{0xf3a5621b86f13239, 0xc8e4db60ad2596bd, 0x60a850d9328b314b, 0x67ef6998c3c69ca5}, Y: Fp{0xd2c6dc4fc8cada2a, 0xfbe9bf95388bb016, 0xb85f8a3665a60b57, 0x1b182d2f9d092dc1}},
		{X: Fp{0x246f1c315a6364f9, 0x33dcb4c7171afa06, 0x572e47186f9cccb5, 0x7991c5defe321a02}, Y: Fp{0x865886d7e125dc1b, 0x600741965bae2fb1, 0xd63fff2966ee48a9, 0x3435b29832596773}},
		{X: Fp{0x3acc331dda0e0b43, 0x621ff333842be1ab, 0x57bf4617327ad35f, 0x07a832d5a4a4fb50}, Y: Fp{0x9cd65d8b5630f0b4, 0x97903e3b45859abc, 0x264c3d98bdc0d241, 0x32fd53374d10d081}},
		{X: Fp{0x89a1a8b6cdfde401, 0xd1bf8d09da10c58d, 0xb71c8051cb51b5e9, 0x526acf151e81c3ff}, Y: Fp{0xf72454bb69539ef4, 0x29c82306f799e915, 0xc9314c699696a410, 0x0fcaf19feef6542c}},
		{X: Fp{0x05fdde05a96cb490, 0xe1b22ee1d05115e3, 0x72346ba621b732a4, 0x78cb52df7fcce859}, Y: Fp{0xe9a584e7fbc227a3, 0x53d4a38153be56c0, 0x13a0666686dc7804, 0x41fc7591942352d8}},
		{X: Fp{0x25b5f94f869b4e64, 0xd02c69f7fa1f9592, 0x4fe7338b1860a75b, 0x436c16dfcb1055bf}, Y: Fp{0x3130f284bb9384bc, 0x19b285249bf53e8d, 0xe30f12675ed53695, 0x8ea612f094ad3994}},
		{X: Fp{0x160f5462cbd3344e, 0x503ebdcb95786280, 0x36b1b5259c6771eb, 0x769c85beb836b512}, Y: Fp{0x4d2326199258f6a8, 0x1ead25678ed41175, 0x4fcc3158263b50f9, 0x3ba9b334d56ec5f9}},
		{X: Fp{0x9460f22f029fe56d, 0xf642e818a312964c, 0x6e4eeb18ed3473b9, 0x12b171b954fc577e}, Y: Fp{0xe578ab5c976cfc01, 0x8d44d06c89188628, 0xc66aa05286abf37c, 0x6577bf672c8dce2e}},
		{X: Fp{0x29c70872a9da3caa, 0xe3a327637cafa869, 0xc5218b0e393e1fc5, 0x620d14ec0cae210e}, Y: Fp{0x7f02a7ccfdc3a3f2, 0x913a4b603e0eaf16, 0x23a1d7f11e9e9b4b, 0x6d5f21bba71ceb90}},
		{X: Fp{0x46704c7ca637af08, 0x13e77355fb63e162, 0xfaa2a69a02bf245b, 0x05bc539126085633}, Y: Fp{0x70f1ebf27e07b221, 0x257b45276842bd7f, 0xaf40db652243f32e, 0x7539bd281278fc8a}},
		{X: Fp{0x59fdb4405bee7f33, 0x85b0fa493a691c4a, 0x892eb1a771299db8, 0x4719416a48a27acd}, Y: Fp{0x01d27042d9621ef6, 0x774b3d136e25ffd9, 0x994459429e581323, 0x041f61837dca220b}},
		{X: Fp{0x684b261992b5bb4c, 0xfc38874cf17277b7, 0xb75b3973942d25f4, 0x2bf6fbeb2fbbc855}, Y: Fp{0x94c71f76767c5f15, 0x00c7c411963d3e9a, 0xd6205b56a9480acb, 0x84d19a02dab1b818}},
		{X: Fp{0x2e50d516ca8fc6ce, 0x10528d63d703bfb6, 0x2e6c757ea8400a74, 0x1497e9ad32014706}, Y: Fp{0x644333ebbb1d6677, 0xb84d6994ab512ae9, 0x84ad973e7422114e, 0x5d39ae55d12a3a9b}},
		{X: Fp{0xedd33f40e1e2a652, 0x61c76f2d53e21c72, 0xea4c9d5ced4f5496, 0x4f665f752f43187a}, Y: Fp{0x2593502fb1e63b5d, 0x3307a63a53326a67, 0xe7653873927a304a, 0x24dbdfbdaec661f8}},
		{X: Fp{0xf2f2df576a2aed26, 0xf27daf5e0c786348, 0xdd2867597bc63541, 0x17a5fe8ba5ee9c21}, Y: Fp{0xb4a273064a3596ad, 0x860ab51cd3017738, 0xce30eb205d519012, 0x23cb32cdc15090b5}},
		{X: Fp{0x29380814200c00e0, 0xe4b10c8719481350, 0x0e48943aacbcb9fd, 0x2ddc9bbb4727a647}, Y: Fp{0x10e17e625eb07cca, 0x78bf2c50fec0eeb0, 0xffb561b642c7c1c9, 0x8ecab28408ed6fdf}},
		{X: Fp{0xa711cdfa60abeb67, 0xaad5932e8e220b9b, 0x3be7b0307879b173, 0x0c9535bb7f1e47d5}, Y: Fp{0xffa7f143bf8774ca, 0x0f66ba2f5ba63a5d, 0xcbad00be8c44b17f, 0x5157685989bdfafe}},
		{X: Fp{0xf67c8d5773bf786a, 0xd803334a61f0b716, 0x47173393b93e094f, 0x8386e77c9597eabe}, Y: Fp{0x64eec7c9fed09334, 0xb1fd97efafed7bec, 0x1ec7450a5b9b6e48, 0x3ab347667e602d41}},
		{X: Fp{0x368c709e6f5a1bb6, 0x96f7d81bb5be17a2, 0xe296d4e10c4c4a82, 0xb46e3511e22d3021}, Y: Fp{0x49da0179e8f95c48, 0x0d3ff996252e6d64, 0x6c19862b912c4ef7, 0x523b6ad70cb5b4c2}},
		{X: Fp{0x56e139f5135dc67e, 0x2993f27d0dd89170, 0x97cd0940031a7c92, 0xb483386a0e6ad98d}, Y: Fp{0xa4478e9f2a5011ac, 0x172f38b8da7488fa, 0x80add8cf8ddd6edc, 0x3d0fbbcbf2db6ab6}},
		{X: Fp{0xefb5350f5712c1d6, 0x3a78d477d8c25845, 0x5b75ff125a980c3c, 0x0e423e164b5843bc}, Y: Fp{0x3a3f3f5f39607d8c, 0x8744a96a9c48cc50, 0xf96cf494161edc59, 0x3af6e5d7592568ee}},
		{X: Fp{0x89eeef31ccf2a3e1, 0x7b5ab05644646c9e, 0xbced5b17e424d562, 0x50cfe95f2bf270b8}, Y: Fp{0xa43f9751fbd86fa5, 0x4fdd0aaa3c275491, 0x5b905567e2e7a45f, 0x1b3e99ab06024db3}},
		{X: Fp{0x49c0c363e9041adb, 0x002b107761f74fe2, 0xf99fc9f445a180e2, 0x6dceac9f12c7819c}, Y: Fp{0x7fa6c5b2f4ffc922, 0x525e49d1c284d2d3, 0x7a5bea5d76cd88b6, 0x4cdaae51c690ddb4}},
		{X: Fp{0x5dfd87ddaaf3dd16, 0x55b66655dab41e13, 0xcdd2f367746f63dc, 0x20e1480a47d9ea77}, Y: Fp{0x966cbafa1a9a500a, 0x89191e18a9178fd6, 0x1ad019b0760971c1, 0xb4efb404424af742}},
		{X: Fp{0xbdfa7f0c014321f1, 0x8b7fd38130281c0d, 0x112589ce708dc7fe, 0x17757b51d1e597a0}, Y: Fp{0x07aa6f3dd38e45fd, 0xda1d09de243d573d, 0x45534ed22b15aa1e, 0x0caf83fde81bf3b7}},
		{X: Fp{0x2d035f500fd5504b, 0xf02c0a2f9bb363f9, 0x7876ac6cd4be15fe, 0x8786f462f927d852}, Y: Fp{0x0b9fe1d68cb346b5, 0x7814e720d08158a7, 0xf0c65d01173bf3d8, 0x4e28d92a6c6c989d}},
		{X: Fp{0x0f6847d366f317a7, 0xd43470af42b77a47, 0x08ec84139106c359, 0x1b12c8162b1686d0}, Y: Fp{0xf0e044ecb2531fd6, 0x023994d3565a4a00, 0x6b2846cc5396c694, 0x0a78cb9358730cf4}},
		{X: Fp{0x07c57cd26c55221a, 0x9180bdd4c207f170, 0x2d424d5755ea3178, 0x078408202d65b9bd}, Y: Fp{0x74d66817d2e82f23, 0xa2c46acd1a1d5a73, 0x977efd739efc93fc, 0x7e69f43b3a4f3e30}},
		{X: Fp{0x18792a9e5dcb84f7, 0xf34d861bd5b8d826, 0x0d4f238151ddccc7, 0x24ee7989974c1c9c}, Y: Fp{0xd7d81da1cf1a6fec, 0x8fa7243772588d92, 0x2fb0063f0962913f, 0x982fabd36528494c}},
		{X: Fp{0x5de712dc4b6516b9, 0xceb2c13d0f9c6648, 0xc005758b6dea7d67, 0x89593cb09f74f51b}, Y: Fp{0x47b487e46122c014, 0x815999f93639b5c5, 0x8ae17504c3f811b9, 0x3ee3ed13667a2326}},
		{X: Fp{0x9ed83dd64663283c, 0x318c686cb1f12011, 0x4ffe82c3c36a12f1, 0x9d4daa28bad91d93}, Y: Fp{0x3479a3d72549f681, 0x6cb1a86baa102b16, 0x2ffbce48cd3016ca, 0x486c0ef80999ee95}},
		{X: Fp{0x5a18eee3bbe00d60, 0x2bd836366f3c16b8, 0x88ebdfa445b56a75, 0x30ab967963bed7c3}, Y: Fp{0xdf29dce5455be63d, 0x4e207fa441c04329, 0xc973a02a9afa2b26, 0x41494eaaa6257f6a}},
		{X: Fp{0x75c441c5c330cad8, 0x991e37e60165626a, 0xb663bd7edf2a7e2d, 0x6eb6a7ec53a69226}, Y: Fp{0x66767445ae34a54b, 0xfee59ed7f6984aac, 0x6747c48154d61707, 0xa12289738bf67501}},
		{X: Fp{0xc5403c75b7cc85ce, 0x796ba1b3c7f6f5a9, 0xf9032166b35cdcc5, 0x29ebb190f28b6086}, Y: Fp{0xaeaa76b92929f2d6, 0x84205c30ae5ceaac, 0x3d88578f0beffde2, 0x84e0c5067e5c93a5}},
		{X: Fp{0x1b611608d41dc5d4, 0x093be8ccb269895a, 0xa5f6e1e6ba29efdc, 0x10406fece3970b50}, Y: Fp{0x08efd523388cc378, 0xf203389ad30fdea8, 0xed89276f39c442a1, 0x8d9c6ebf2f49d05a}},
		{X: Fp{0x191d6af20134984f, 0x6d91c28e8f28da9b, 0xe5fc925343b47671, 0x5c2e1dc11de09434}, Y: Fp{0x064bae3632818133, 0x717eacdecfcd9fa7, 0x83c445ddabe56459, 0x8be15a52f92f218a}},
		{X: Fp{0xc30e54ded76db8ad, 0x25856daf48c67215, 0x3addfdb0ddec21cb, 0x2546c6bc1433ff4c}, Y: Fp{0xa935aea354fd3422, 0xdacc2c0ca80b1626, 0xbe625d7690e5240b, 0x9053512fa55f2134}},
		{X: Fp{0xc261d9730333a40d, 0xb2b6e9047a525427, 0x7f408959017430da, 0x7a7171e23c65db25}, Y: Fp{0x45f09b6841d227c3, 0x640936aaf152bdb0, 0x26c7d3cf330d3387, 0x105d38d4d3811620}},
		{X: Fp{0x430157bb26ffe43d, 0x6557a775bf95f200, 0x922f29ea9a44b0d7, 0x08c421aa4a0407f6}, Y: Fp{0x1dc9b6bd5eb52a62, 0x58c1ec7f3c9ff2f6, 0xed9b71b720f046c5, 0x0903dd7180e36a20}},
		{X: Fp{0xd2fad26a30898dca, 0x221a6612e349d8b8, 0x18ffb296db0902b1, 0x3ce989922c7bdb99}, Y: Fp{0x7230582bd5ca796b, 0x5eae1f4704e0e402, 0x776ebce84180943a, 0xad4634a019655eae}},
		{X: Fp{0xd6a3a376ea5f73f1, 0xa99c1410d56d2d7b, 0x008ceb5e3c3861aa, 0x9757cb099b87f36a}, Y: Fp{0xef347af710825cf9, 0x2c7fe02b2706ce07, 0x8f166ec8d5a61393, 0x622d73325103b5ca}},
		{X: Fp{0x093ad3961c39e447, 0xacf1ca3e05f6bfcf, 0xd47c093dd2531944, 0x799c61d25b482153}, Y: Fp{0xb5c2274cb849134e, 0x406c9a9328bd16ba, 0x1dcf5bb4fe5d9380, 0x3eab9b359c57556e}},
		{X: Fp{0xef3e9ea3a53df708, 0x97c1c5d4f39b4772, 0xbefe5eb6c7fcc48c, 0x9500fe71f9d978cc}, Y: Fp{0x63b1b20d87d23749, 0x26d5434fd7847051, 0x64e032d55523f9de, 0x10c0675c400c74e7}},
		{X: Fp{0x77e33dcc605ab779, 0x913c5f3261a0c00d, 0xbbad0a1cdf86a089, 0x7ee06da41fe8c3d1}, Y: Fp{0x6aef89d6338da806, 0x9a46f542406642e9, 0x967125c66a4e6c6c, 0x1203955c3fbb33f4}},
		{X: Fp{0x7fc90a8b4792472d, 0x9617abb77cc3fed6, 0x5e08519d3110b859, 0x49f8bc2d9f9a9bc8}, Y: Fp{0xb9faa51183cc2b85, 0x1524b5f60ebbd49f, 0x156dbbbf678bcd05, 0x494b4cf47eb33622}},
		{X: Fp{0x34681bea486f2f6c, 0xc0e97679e6480697, 0x9fcbf6ea68a22f93, 0x32904f1e8f98976f}, Y: Fp{0x8270ea18126a74a3, 0x13fd266771549929, 0x627d9ce3f0185f47, 0x50599fb7d1529e53}},
		{X: Fp{0xc5c997eead2c6446, 0x91854c5b2517b9a2, 0xa0dee74c8a40c291, 0xb1f636ead4a04536}, Y: Fp{0xea1c0502c3878958, 0x43e91441df0953fa, 0xcb42d54fda687ba8, 0x9c6003559fdc0424}},
		{X: Fp{0x2f2248b5ca3d5cc0, 0xabbd4da017e7339f, 0x41c46bc734185bdf, 0xa13cbb33384cab91}, Y: Fp{0x567151c7d1c45268, 0x887d9c54653faa11, 0x9d104d8aef55b106, 0x71bf2c02ff0c45a0}},
		{X: Fp{0xd8d3f7ab05b622c1, 0xffaed5ca469d9255, 0x2b720b1995b9442d, 0x18bc7f9d4127e639}, Y: Fp{0xbc42892a24004751, 0xc3758c254465cc06, 0x53d30889ad9c7be2, 0x8d42c1aee24426f2}},
		{X: Fp{0x7af1fc2b1281c7c4, 0x2477757b0072bba0, 0x00302ccb2bf89b95, 0x647bf7f8ac092321}, Y: Fp{0x079187e9890910e3, 0x8ab3b0c294c23a72, 0x3c7240b5a6db64b0, 0xb2d5721abbe4453a}},
		{X: Fp{0x67d5fd8db9e38c56, 0xef80461937a8beb2, 0xbdb6d252de428772, 0x5a68433a365d6261}, Y: Fp{0x948dd101e044021a, 0x93434d9ecf175ea2, 0x18c85344c197f681, 0x8e2070aedc04f9c2}},
		{X: Fp{0x5a3277d040341b7c, 0x58e5103b8f21b684, 0xfb1139b2479fa92c, 0x3333ced4ea4f5dcb}, Y: Fp{0xda657caf368349e7, 0x3247cc61640c3915, 0x178ad367cdf111fd, 0x21ef8c1ab083a02e}},
		{X: Fp{0xa356bde11e564069, 0xd4cf63a41185e543, 0x7dbd93e719ef8893, 0x74640b0b860dc4b1}, Y: Fp{0xe2f3891ae7271683, 0x3fbbc29f91b66902, 0x9c19102a6b273dc0, 0x17424da25a7ee30a}},
		{X: Fp{0xa17a83b1ca8b591b, 0x622bf593e60eae48, 0x3b9dbb030c5dbb2f, 0x1439a4791049679d}, Y: Fp{0xf35ef2d569d26f24, 0xbe62d9e65b292c62, 0x83189ba70fe118fe, 0x2a7411e8364cd34b}},
		{X: Fp{0x1f30a86dde521469, 0xc2e8970fd4e91425, 0xfb7910d438e1722b, 0x930c0e10cfff3791}, Y: Fp{0xffc640be62b8dd97, 0x2aeab538abb2a0dd, 0xfb500d641c1c9a77, 0x33b51c8a3cd84a53}},
		{X: Fp{0xd5fa4df9e62b8036, 0xb9b167faeaef8d7a, 0x28e9f0a60e76f052, 0x93726448ac871fde}, Y: Fp{0xd1767808be3f232c, 0x1f3d9d023f418640, 0x0a3d7860d203cfdf, 0x06880934f7330f40}},
		{X: Fp{0x0aab74ec62ae4ced, 0xcebd72907f4259d2, 0x18b730f50dbca786, 0x70af4d986ba4018d}, Y: Fp{0xe2b02f74c77275d8, 0x0f1155490cd0db29, 0x9f2bc93664f67af1, 0x843a0c24114cb5ce}},
		{X: Fp{0x5ce67bf2a40a35bb, 0xff9a19d65f40b192, 0xd107a5d168b9049e, 0x2dd9cf5c8f22c50c}, Y: Fp{0x1c708c3c3e4c2e8f, 0x616f1405d30ec074, 0x4841412abafb17d7, 0x8115da775adb738e}},
	},
	{ // i=3
		{X: Fp{0xb7cf070e06c1b8fa, 0xefcd5acb599cd6cc, 0x3f33eb48f715a415, 0x073958ffb4aa0690}, Y: Fp{0x98a55798823de347, 0x54706599f6af1fdd, 0x4b200633ad7ff991, 0x05f7f188b6dfbc6d}},
		{X: Fp{0xfe1361002461b0db, 0x5f9dfa5bd99a7624, 0x5f3350dff6d3e355, 0x054fc8f33aba8977}, Y: Fp{0xfcc4c41fae7975c7, 0xbff07ec0ae524127, 0x50e6cbd2a7240f8c, 0xae231cbb9353e5ec}},
		{X: Fp{0x9b1871e5de0969c6, 0x898f96ddd3fbab4e, 0xc5b340a4bf23b333, 0x56a828930588b605}, Y: Fp{0x65c58bd539834c6e, 0x899ea319c2306bd5, 0x1c762f12085e629c, 0x1e29e9e44c82079d}},
		{X: Fp{0x874ee27f0bedb7bf, 0x590debf0e99a3732, 0x14fbdcb9c4da6cb4, 0x00865c8051c73136}, Y: Fp{0x75cebddc7f2801c5, 0xb8021926c4f007ff, 0xf69bd0eb12b087f8, 0x9ee88fb1d3b57b13}},
		{X: Fp{0x4addcc589ec07cb0, 0x1b8dacfda0700d88, 0x1d9a4420281524a1, 0x99a502937f76b265}, Y: Fp{0xea662914e06c8f53, 0xb2784429ab61ac99, 0x16064204452ac106, 0x7f27524cf205e201}},
		{X: Fp{0x426d00187297482c, 0xa153471ccc184910, 0xff45f79849fb0102, 0x5737048863eace84}, Y: Fp{0x3f2cd6afb06f4a36, 0x142eedd818e19b5d, 0x815b61f8ac683472, 0x024be010e2d3025d}},
		{X: Fp{0xb181ca75bd31967d, 0xae046c3b9a7a37d4, 0x33c3a0550cfd06ea, 0x8e4b874d1d0b65a4}, Y: Fp{0x3f0089ed76b9b8ff, 0xb05a54f0db647fd7, 0x055ec1269c3ffd64, 0x6849ca21a74e23e4}},
		{X: Fp{0x05d5ddf39ac479a7, 0xacf15af4e63eeebe, 0x443c3ff556f55b92, 0x36b5e261af57c57b}, Y: Fp{0xd7bb7e81edc5320d, 0x43b16a870a4af251, 0x4e9f67ff4e846f30, 0x2bfd3ab419119459}},
		{X: Fp{0x37b717a2dedb1761, 0x0148eff54774e145, 0xbca88896d8a3e424, 0x8790c28003890c60}, Y: Fp{0x0e25dc565ae250d1, 0x63c58639387168e9, 0xedf3a3d21ec71bc5, 0x40dc5d55b3166b97}},
		{X: Fp{0xc06b31b671a201f5, 0x75d8e3944af740c7, 0xb5ed1f19e8dcccca, 0x4562be2d5f53a0c3}, Y: Fp{0x8a3e9ec573135851, 0x8dd09e7687651f52, 0xb728c9cf9a525352, 0x9db389d0e3ce582b}},
		{X: Fp{0x07f8c762f3953f17, 0x39a29deb51599bd6, 0xd8c238bad35aa9f2, 0x85d0ad422ba9916f}, Y: Fp{0x79bd02315d12bb15, 0xe868a14f5dac4c00, 0xd372399100be50e9, 0x5843485f124b1f00}},
		{X: Fp{0x4d634d685f3aaa88, 0x5869da5b51c2606f, 0x103decdf97ad793b, 0x4b65ae96e6934972}, Y: Fp{0xe202094950266d62, 0x72829c54ee00e7ee, 0x7d42a74f46b5b5fe, 0xb1fac240119bc143}},
		{X: Fp{0xa29c0696303ee360, 0xb82bb8524cd5c888, 0x89d7488e18d09802, 0x06968cdcd34da9d0}, Y: Fp{0xb48bf328f01ff1af, 0x87faab94a9591c1e, 0x5ad2475c385ddc58, 0x686f06663f135523}},
		{X: Fp{0x00845467a2e27014, 0xb3b9dafb8bb37a16, 0x5644e69003abc7db, 0xb4d8ad138e8e78ef}, Y: Fp{0xa736c57b89b6f38b, 0xeb3285712d52575c, 0x2ba12b6aad892079, 0xb576bd2c13c9ac09}},
		{X: Fp{0x87664679b86de6c5, 0x62121db4a010b7f9, 0x47b4ccbbd2a85df9, 0x205305a380a0b313}, Y: Fp{0x6bfdea1c7c81cac3, 0xcdbbf98200e6aafd, 0x754deb94dde87658, 0x776a16120fd010ef}},
		{X: Fp{0xa081fed05d61bfa4, 0xa4df1aec91709b50, 0xdfa2ec8274d3e0e4, 0x3e52374ac7eaeaeb}, Y: Fp{0xaa03ee79cea0088c, 0x3bca1f576e5ff57c, 0xad00b16e05d213cb, 0x43e4269492b2bf92}},
		{X: Fp{0xb35bf33c1f9fbc38, 0x3c1b5febb597aec4, 0xb5e90af5d8b6daeb, 0x8fb3faedd6fd028f}, Y: Fp{0x4e2578f2d78f1743, 0xb88c9ce027d99492, 0x804185c34c0a95bb, 0xa17c063367d0bfbc}},
		{X: Fp{0x002a10fcc94cd5fa, 0x6b2a72c54cc955e2, 0xa4c0e21746a900c1, 0x6c93d79d92f6b409}, Y: Fp{0x110cff520b589f70, 0x63f0a415884b0aed, 0x2df0d53302839071, 0x17382292d1ef7512}},
		{X: Fp{0x3279b629c1a59a04, 0xded2c9d772149c4d, 0x6f7f2a805ac852e1, 0x57803d9f5e95f291}, Y: Fp{0x0d660901e45b13ed, 0x3e47d6058a5d6f52, 0x94e92c8997a71187, 0x023f4ff439720fbd}},
		{X: Fp{0xe8f44add314f5225, 0xcf6b53484f3770b6, 0xb7977a9e64dd0cff, 0x0f73f82c982cbd5f}, Y: Fp{0x0b8da757ee3f846e, 0xd2d90108fba40e8d, 0xd9604f72c74c3059, 0x18e52db25108d224}},
		{X: Fp{0x2535f63e99300c73, 0x7f7b2e5e8a108043, 0x299192a806287f87, 0x3772025130e5fe84}, Y: Fp{0x62384f2afda8234f, 0x5aaa2fc25ec149fc, 0x3a36bc95431854f3, 0x360f578d00cb996e}},
		{X: Fp{0xf3f1914322da0b03, 0x85f84a23cfb29fb0, 0x1b16f6363fcf40c6, 0x3a05f62edad3febf}, Y: Fp{0xc0486705e9009aa6, 0x3f24fb649c4e2f9b, 0x0531ae3c878b16e4, 0x2f7e70fa1cc70cf5}},
		{X: Fp{0xb0ab151dc1cfa5cb, 0x3083ae53a85ce7fc, 0x15f4f27264d159f8, 0x748152f986281c7d}, Y: Fp{0x33ddacc705dd0f47, 0xfc1d515485b3eaee, 0x69fdbbf576321e93, 0xb16cd970ed13f7d6}},
		{X: Fp{0x6c1eb0ed142837e8, 0x9537201c00044108, 0xa5e6b871f7c3d17a, 0x2c40b2527c47b5ce}, Y: Fp{0x444307b3d34d675a, 0x7f89a71fc6cb3ae8, 0xd521dc2eba2197dc, 0x2f197644dcadade2}},
		{X: Fp{0xc00693590014138d, 0xff70d7e3f2351dbe, 0x3352ce0cb39fd19c, 0x8e717a907c8f8fa1}, Y: Fp{0x157da33120aec2a5, 0xd1aa5fb161a0a158, 0x242143433c756f58, 0x75a6b517f830618e}},
		{X: Fp{0xb2de7ec56539a4a8, 0x046548cb25594b6a, 0x464fb5206fbd84b6, 0xa3990db141bc6bed}, Y: Fp{0x539d166794b1de28, 0x5d6d9b05afc657a4, 0xd61a3173c5674312, 0x7ca59f82b7f4c06e}},
		{X: Fp{0x6e280ef0945f3109, 0xb6dd67f416819e50, 0x42f30366a0e1c23a, 0x823008e35fbb6dbb}, Y: Fp{0x1a78b1b28ece5251, 0xee4483c8868f450b, 0xcb682fbc0e4bd561, 0x4a5bc73389301784}},
		{X: Fp{0xdd0339796004d771, 0xe9d7c24fd9c29142, 0x762575970e728e7e, 0x23d1d1e4a0525d56}, Y: Fp{0x66cf177f0b83477a, 0x53400c729665be2f, 0x691e1095d5abcf85, 0x109972cf26874168}},
		{X: Fp{0x7e46464f42360eaa, 0xc07cbf3caab32eea, 0xc932977361fc19ee, 0x9ef4bfdf8ec0a7c8}, Y: Fp{0x718072307472293b, 0xcfb377b16ec19553, 0x96b22d03995e70b5, 0x126b26bb3059a741}},
		{X: Fp{0x61523b365d6b9b0b, 0x3b479c26b28f541d, 0x3e0b7f482544a3f7, 0x081cc390e6e54f7f}, Y: Fp{0x10dd8b32fcdf1f14, 0x66944630fff4fb52, 0x8084fdc60008bbc9, 0x98228bb2db53ef56}},
		{X: Fp{0x108c32b139965469, 0xf26abf956ef85fb6, 0x02406b7841a8fcd4, 0x52ed67bb49a59b1a}, Y: Fp{0x8c6b5a565e814a2f, 0xe094d3ca27dc312c, 0x1cafa42e5aceed88, 0x0108088fa00ed1d8}},
		{X: Fp{0x7eee7d24149508ca, 0xa7a2921f48145672, 0x698066ddf4c5d078, 0x6c0b8a0db07db338}, Y: Fp{0xbe1942c2df512075, 0xae2bff03e768fa32, 0x0093212902117266, 0x62c5cb6fd9b4ff78}},
		{X: Fp{0xd0a3c73c87066a00, 0xd8b2bdd029c6ce37, 0x475463335b1f7211, 0xafb6cd34b99e76e8}, Y: Fp{0xf58b5c5e11bebfb2, 0xe7cf99d45a3741ad, 0x76459444685fb2b5, 0x2dbc16bc805d29ca}},
		{X: Fp{0x342b75c44872597b, 0x0e40cd0485ee9d51, 0xa04840103bfa6026, 0x2652f8f65c827562}, Y: Fp{0xd3cead6ad8c73c25, 0x9c977501bbd4f808, 0x627e40e5d765c47e, 0x86d626a68e2875e5}},
		{X: Fp{0x8774056a84eb2960, 0x56a5e2638d7b454b, 0xdfd03ab90bb49081, 0xb1b69efd20d91e99}, Y: Fp{0xfec53b67ecc3b11d, 0x64c594267731c0d9, 0x57af115be4ee1e27, 0x7c25d3e3bd304436}},
		{X: Fp{0x473bec66a1b3aa27, 0xbc552013c05a9343, 0x572bc819d5834ded, 0xa533b3f92bb912b0}, Y: Fp{0x895f67626cca038f, 0x2224c83c945d3dfe, 0x30219a1293f4c818, 0x31a708257b6a1b87}},
		{X: Fp{0x3c3031d3645f79be, 0x1ce087dc91e303c1, 0x78ae466ca8b750f9, 0x968a3bbe6e1dbc05}, Y: Fp{0x5cf74b02e030a744, 0x1dcd8ae28d29e491, 0x4a1172849b4f8ac0, 0xb20062aae5173706}},
		{X: Fp{0xa32120e22d84e50d, 0xcbd7324077850e43, 0x871eb24b0987a207, 0x09f63d923c5ea69c}, Y: Fp{0x097f3eb294d50e1a, 0x2ef82ba6df0633f5, 0xef5f86c2d8771990, 0xa80aa4f51336d28b}},
		{X: Fp{0x44137f2308eb696d, 0xd1a3e4fa1a63bfdf, 0xb28c62258d07a57a, 0x8ec04d9efe23bc7c}, Y: Fp{0xd2725f57b53b3fa9, 0xc32a7dd1477c59dc, 0x00f5f3844ec60cdf, 0x5e06341402437ff2}},
		{X: Fp{0x7f00db955b976060, 0x7fdcd286b6a764c5, 0xdae457aac269c34b, 0x5c04bf648b5e8ab7}, Y: Fp{0x87497a50eb4a182b, 0x09a3161b911e9640, 0x2006d7add7fe9303, 0x19f57b6eea398588}},
		{X: Fp{0x342a931c907252ff, 0x753294254b8c50bf, 0x8eb36d1a3d999fb0, 0x2cbaa77d04ff3c4a}, Y: Fp{0x748070bfab475a9c, 0x55a572ef727681c7, 0xeba6cee70e8fca4c, 0x00dc900f442624fa}},
		{X: Fp{0x6b39da4e155b1658, 0xa7ce020eb4e7bba2, 0x6961b3729d0a8924, 0xa4af9fd7cbe5f042}, Y: Fp{0x3454f3ac4b963770, 0x30aba5b1508520a9, 0x81b44df9cb078866, 0x24c4fe0bb18b6714}},
		{X: Fp{0x19ca627d19afac9f, 0x6d53e20bc3574dc7, 0xecc9dd3afc8f94dc, 0x458f6091f9ec3f9b}, Y: Fp{0xfcabf62bca5b0b88, 0x58e19b35c8d8055e, 0x7fd9225d0aa1c522, 0x6ad84d87af2a274c}},
		{X: Fp{0x4b042352cc8d6a26, 0xf6eae136f0189b68, 0x02493a3acfb0a2e1, 0x5907eee1e109c6be}, Y: Fp{0xe27bbaed19c89b44, 0x92574dd84ce75349, 0x1c6d14f59bb345f6, 0xa9205ee3afe2187b}},
		{X: Fp{0xd02f27719029aea6, 0x644b681a035f8697, 0x85ce0e908cdca0f8, 0x43e28c0da78d609e}, Y: Fp{0x0a8c3e4633f8d912, 0xde62d8ec7a1f7329, 0x78729151d1fa8e49, 0x4c7e5d263137ceb9}},
		{X: Fp{0x2335d01b081a1a94, 0xea41f7c92648ff88, 0x02bbbbf0fc735615, 0x2477c78ede621c12}, Y: Fp{0xa749612313a577fb, 0x33475b1a87d47ca1, 0x206664ff15deb6b6, 0x36a63039bf2a29b6}},
		{X: Fp{0x0361cc36062513b2, 0x168eff8df55d4a44, 0x938fe67d35684f12, 0x809cfadb6083d017}, Y: Fp{0x680094c01a413147, 0x24afa6cdda00f1b4, 0xe7c89353fb143532, 0x97650db68919ab96}},
		{X: Fp{0x45863ce1d461d624, 0x75fcedf82b19e427, 0x7f4ebcf5b5f45797, 0xafff51a1b9c1f621}, Y: Fp{0x668160a9cadd1765, 0xd26bcc83a6018043, 0xe2c018c10ddff2d0, 0x52c973a0bdf341fd}},
		{X: Fp{0xa08264fb9923dfc8, 0x3429ebfd898f9d56, 0x6ec128b4d929b91e, 0x4270cfb2a2d27e71}, Y: Fp{0xb5d2bcaf5c13de34, 0xf1e0b0b9c391a468, 0x6705ce1a08bbbbf4, 0x48b8207f99244687}},
		{X: Fp{0xbcba685cdf42592c, 0x3f83da96fa5e3a8d, 0xbfdad9559ecf941a, 0x592d35a99190edcd}, Y: Fp{0xe01cef730f22b9ac, 0xb81c2c394e813918, 0xdafea5d877bc992a, 0xaae6edb492018d79}},
		{X: Fp{0x24b77334a25f532c, 0x4466e272bc1973e4, 0xcb3337bf1eed0cff, 0x588e176bfc13b190}, Y: Fp{0x2de2fb7634e8af98, 0x07835683393b46cc, 0xa151917027e65f39, 0x2fb03bf6352b2444}},
		{X: Fp{0x27c9d0e5434cfb3d, 0x1b5e7ba493a2263a, 0xea7cd74c06a37a40, 0x0d0b0f7013282d99}, Y: Fp{0x5146560275f170a7, 0x3c41293c1da78535, 0xcac799b48b2d6241, 0x78e9a1af1c5d0b7c}},
		{X: Fp{0xb5b70843266d72e3, 0x6d737b1bed6aab8c, 0x58efe079704c1bf3, 0x44b9a660f1692a1a}, Y: Fp{0xab6445d4c1876121, 0xefa577acebf04580, 0xdaae14804067486e, 0x89ae6301dde1774d}},
		{X: Fp{0x85b4be41523028d3, 0xdf0ac9a6aa9d00eb, 0x19a68f370b3d1396, 0x5c1ad2f81bc457ad}, Y: Fp{0x25bf2d9a62180b1c, 0xfed95e0578695a4e, 0x1d31968d930920dd, 0x509637b57f86603e}},
		{X: Fp{0x6d5b093130d54081, 0x027737ec276a6318, 0x858fa95891e1b51e, 0x5a361d59a126beb4}, Y: Fp{0x42554f0fa98f09e7, 0x6479fa6aaeb40dcd, 0x5bfc9731c0b1e894, 0x57da3ed838c62aa1}},
		{X: Fp{0x09d38509a96c6b23, 0x17ed66fe1d72eafe, 0x9b6c78004af996d0, 0x145598a297c4416d}, Y: Fp{0x523b861b149d09e5, 0x6fe68ad531d351db, 0x181094f7c2c7fca1, 0xac1c09f0cd84f483}},
		{X: Fp{0xd79e81610c259128, 0x855f224b5a287f15, 0xa1e43cc596c5b4f9, 0x8ca72a7fbe330b55}, Y: Fp{0xf93544391e831642, 0xd8416fd17225d6d6, 0x1d89dd6bb34de67b, 0x770d69dc3e944c60}},
		{X: Fp{0xb434fc1a9d745709, 0x4aa9188213854dd4, 0xb0697a2ab2a0661b, 0x45c83353319e2da6}, Y: Fp{0xec008d89c403d2bc, 0x4eeffe583c8627e6, 0x639db26faa296fc1, 0x88d2abd367602fa5}},
		{X: Fp{0xaaf571008ea841b4, 0x2113431de67385d1, 0xa51a24368a9dc461, 0x4dc3f3ab591d934b}, Y: Fp{0x3f2df19fc7a7ca86, 0x4cf496864b907e8f, 0x64e7ee2d998b6b93, 0x795689e722e78458}},
		{X: Fp{0x8b872b9462dcd423, 0x10dc88436d6202dd, 0x19846301dd83d9e2, 0xa32061a10d9ba5da}, Y: Fp{0x2d0483fd8381d305, 0xe236e93b53892c33, 0x05992a3486f293a1, 0x1e866a75f9ee1828}},
		{X: Fp{0x477c49758d4f7a02, 0xbbe0ac0a74e011f1, 0xf51703571983c86b, 0x0de402d0884862c6}, Y: Fp{0x0ee40c9e7ba8ef31, 0xfa2f921e25bef768, 0xe19fec8c8ba9749b, 0x1f3f32394916a2d6}},
		{X: Fp{0xcebd5c511db0bdb4, 0x4878707dc1533de8, 0xf6eb3d3612a18729, 0x9ebac5b01a68a4bc}, Y: Fp{0xb4d44b6c8ddec142, 0xd12804328f9ae75b, 0x18562f6989b2e698, 0x3a60d0464c32c72e}},
		{X: Fp{0x2713af093bfcd5f3, 0xd10516dc9c5b02d3, 0x4e64fa9abcb8822e, 0x332b8e0050e1b241}, Y: Fp{0x4f6a342d5deec78d, 0x107dc09f95d5e2b5, 0xa1495baa7aea29fd, 0x2accd7dd49200a4c}},
		{X: Fp{0x607d7d35c60157ee, 0xc137ee87e7382c61, 0xd9ed00eb9beb4b36, 0x244e724e8c9484fc}, Y: Fp{0x120f39bd1340bd65, 0xc1a9a5532e9d1e91, 0xc32ebfcfb6a690b5, 0xaf81edc318d1cb7f}},
	},
	{ // i=4
		{X: Fp{0x1d248c04139586e0, 0xe0d8e78fbf637cc1, 0xfc218ff28fe45302, 0x78d68f24080593c6}, Y: Fp{0x51d6b8b069c68216, 0xadeca2098cf9976e, 0x9aed43fd4ddd30a5, 0x0dcedc72f1323c80}},
		{X: Fp{0xc7d2a34d3303fd9d, 0x782d48c6b155549d, 0xe81c01fb94d9d122, 0x1c4d36e107090d25}, Y: Fp{0x90eda5a89c9c8a09, 0x265af064550e4fef, 0xddbe8717b6ba38c9, 0x48f0e9b236d18d02}},
		{X: Fp{0xd47a43c5090dfc6e, 0xa0b31d5f3547b7ea, 0xb503b582b8ad4bbc, 0x8b594d5504643ef1}, Y: Fp{0xfadf916b05525aa6, 0x62f572ec2b414f52, 0x8313b284b256863f, 0x2ecb950a10a26794}},
		{X: Fp{0xbbd37293396a3f99, 0x063fc7649c3de002, 0x30a222dc76b5c524, 0x4a0d7f7938f7521f}, Y: Fp{0x535e2d61505a9465, 0x82fe22824a9bd3fb, 0xce8646c664e493e4, 0x6b4ead3c59e26f66}},
		{X: Fp{0x9b00a37d644f5ddd, 0xe5b57ce9d8ef8307, 0x0d1852a1afc7b9ee, 0x546ebffec337cc68}, Y: Fp{0x11a3a1bdec6886fb, 0xabc24a704f8e3072, 0x294d2489ca1c3601, 0xa9c4994c505cdad8}},
		{X: Fp{0x29e6473b24af625b, 0xb865e0bf7296d65b, 0x57b2c34027db8f9b, 0xad468834eaed135e}, Y: Fp{0x5080d620894b75c3, 0xb45fbe73e69b3685, 0x46ec35dd87ec3fbe, 0x02e5e188c4170ca9}},
		{X: Fp{0xcac01b2c5dae0cc8, 0x0811e2e3042b1981, 0xaf619552f69499ee, 0x5515d660d587ee80}, Y: Fp{0xe0e0d2f66d1cee59, 0x84c092360edd56bb, 0xd8402c6596ef3aff, 0x98bea1f0e9f86b06}},
		{X: Fp{0xe84e6eb37dbb8501, 0x8b5499eb28fe6589, 0x01c347131c5ae712, 0x5cfdcbe10712cc9c}, Y: Fp{0x6e9b0e0a424c447d, 0x648bbabdc496cf79, 0xd6330e0e835c8590, 0x0b0a8a5117ef969a}},
		{X: Fp{0x1c689e0f59501bf9, 0x4f2d1d8ea69042bc, 0x0562bdc3f040fc78, 0x2d0fdd94f61d2116}, Y: Fp{0xd38800bfadccaf3b, 0x121e41af349d8ce6, 0x069be5df36def24e, 0x8f0978f85a9be898}},
		{X: Fp{0x5b3f406ade4682ef, 0x44bca03d44bd5f75, 0x2e98de055a8fa193, 0x6a82dd93392890e3}, Y: Fp{0x48bb22614acc8cb8, 0x091f009ad0773c9e, 0x92ab014f67d1cf6d, 0x569141cb9365d0f9}},
		{X: Fp{0x63ce6ca0767e756d, 0x6c0ee7eb97b9cb7c, 0xf23a7d10ecc14c35, 0x18493a9047688bf6}, Y: Fp{0x3def4db1253492ed, 0xda794e81476e5707, 0xc0065a8e3dba96c0, 0x44fa60e01b8b177a}},
		{X: Fp{0xb343a299e3d948fc, 0x41637efca251fe4c, 0xd760439338fbdf9b, 0x0cb669ad3afea56c}, Y: Fp{0x3f45e8e0657f05e2, 0xcb2bd865d30520f9, 0xdc459b0e04cb39c7, 0xb1d85c7b051325ef}},
		{X: Fp{0x038d043a16a12842, 0x2df549ed36efe243, 0xd19e0df925cd4d49, 0x9bbe0996ca82b2f5}, Y: Fp{0x0030f26f3cace6c4, 0xea6b91290d7f92ef, 0x103fe2035eb37b28, 0x81cda397325641df}},
		{X: Fp{0x4c4218601f2e92ea, 0x637f8f330863e336, 0x80edad6979efcadf, 0x6a80b54312b4cd9f}, Y: Fp{0x168485919893bade, 0xe5e8816c3864b671, 0x6e78a53d378e1745, 0x4fd3a207c7fbb9fa}},
		{X: Fp{0xcb9cac8e7cb3d117, 0x9550873eb792f1dd, 0xfae5ba8f0185f679, 0x07711ad07a1ec93a}, Y: Fp{0xefbeed9effce313d, 0xbccc311e2d54fe17, 0xe2d05f491136766b, 0x92d1605ab2b3522a}},
		{X: Fp{0x95ca1bb919a322eb, 0xc4d13c49d672e273, 0x4797255d41bb8c0f, 0x1ebf8f510af182d0}, Y: Fp{0x1d74935661933d97, 0x10deb64252136a02, 0xee16c808be654172, 0x28187964a641c5d3}},
		{X: Fp{0x710646cb6398f1a0, 0x4ac50e6896df6dfc, 0x67b115228c3520af, 0xb4fea04ed0f36ab1}, Y: Fp{0xd0f84600e5f72ada, 0x23131cca368a7bf5, 0x6872e6afcd2baa7e, 0x047d4c2c785bfeb7}},
		{X: Fp{0x342c6fdc87e301f5, 0x51bd0c82d4e7446b, 0xcd1c56504d795af5, 0x15802b52511fcbbe}, Y: Fp{0x39ce45fab4d3728e, 0x08bcc2dd0e3b750b, 0x2c9a901e1073e839, 0x1cef8dbe030d7e0c}},
		{X: Fp{0x8e4d3d959ff3159c, 0xd6974c7fe0b57576, 0x246e15f964265f26, 0x6eef0c149f1beabc}, Y: Fp{0x31ea330e644b803b, 0x26ad0995bc0a23c9, 0x9f4de78c640e1fde, 0x8ff48f457a0dc906}},
		{X: Fp{0x160e61060506b891, 0x39b2502535f29e97, 0x511b15a368c24212, 0x9968dd9cef81bcc2}, Y: Fp{0x1f0be9551bbf7447, 0x1b8a3245560e79b2, 0xde7a038e2963f99f, 0x2349efc7294f9e93}},
		{X: Fp{0xbf7c7540cdf8bdf1, 0x2bab89d49cde7b9d, 0xa9230c7c09cc9b3f, 0x0503b256c4a1c817}, Y: Fp{0x11649908d36a44e0, 0x2896dcdd9673baec, 0x77e70a670635f701, 0x8f1dcf4a6361790e}},
		{X: Fp{0x7fd78197503e5738, 0x2a635746f0c173a4, 0xd11c111fc7a941f2, 0x9ad21ba07a8705ef}, Y: Fp{0x6be50d4ac020e986, 0x1ff7091d85f9d484, 0xd4413474be2d6b82, 0x74f7785c41684837}},
		{X: Fp{0x41c1a6e517edfdfb, 0xa297b118a44335cd, 0x8e5ac1da57102ceb, 0x97fbd7e1e86c64c5}, Y: Fp{0x80b9c7eb259a3449, 0x0f9fbf277f1b7278, 0x315da6f5a86b7c40, 0x22ec48ad7f23482e}},
		{X: Fp{0x2bf734cbfc344a27, 0x8d83eb472e4e071d, 0x580bfdefc7310b61, 0x5d370e27b19ed623}, Y: Fp{0xbc0baf834fc1931b, 0x650ea8d0ae34aaa4, 0x2aeb762603a9b1c4, 0x62e60f282b0e3e58}},
		{X: Fp{0x8222fad32b521740, 0x2d5608e42c989f05, 0x21598b19feb87764, 0xb31834f597a45630}, Y: Fp{0x36b98fa255e8b35d, 0x5b1b5625f5fee391, 0xa8de99401b4867c0, 0x8367b9fc77bd9e6e}},
		{X: Fp{0xaa64cf55da469051, 0xc5ec2df057a2bc0a, 0x16c6708ff494d3a3, 0x1163394bca4657d2}, Y: Fp{0x98da496da3b2d93b, 0xca903436d3aeca27, 0xffbe3719219b3454, 0x79925793d7561dc8}},
		{X: Fp{0x7815956341202f8e, 0x267e9274d6a25b13, 0x19b903a3ed0a1df4, 0x9967bc5da9b8507f}, Y: Fp{0x87af65dd279d1aa3, 0x9661dad19e3b1260, 0xa4fd0157f06687ea, 0x615b9363a0208bd6}},
		{X: Fp{0x627c5361ba08e831, 0x1faa3f8287eec2d4, 0xac9b5aa05cd8c104, 0x6293b2a6067ef279}, Y: Fp{0x3e8b7274f9378f14, 0x9973df46e991f65d, 0x65bf6e3cd31b5c65, 0x2930dd25396805ce}},
		{X: Fp{0x2f9913fd9442a1de, 0x82fd2fd2a3ccc627, 0x540a2c6f2a7b8edb, 0xb1603fddcc34d2b1}, Y: Fp{0xad4e01549fcd3bc4, 0xca17bcce191e960a, 0xe5cd82b23d926f0e, 0x4eb539aaf997c8b3}},
		{X: Fp{0xa9f1fb02db5cdb8b, 0x3be4b0538984a566, 0x4c26ce9c3c881876, 0xadb9014ae67afe4a}, Y: Fp{0x4c2722c06001673a, 0xc3662f10e682d131, 0x8a1326c46dd688c8, 0x986a0ff64b43ea5c}},
		{X: Fp{0x0f4fe17d18263e0d, 0xc985c8d3497799d2, 0xf052c2afba503ae8, 0x75259b1946c13367}, Y: Fp{0x483bc71dc9e3427f, 0x5dff7a8016191d8a, 0x0cc0e5945997e1b4, 0x2218e13674f85cca}},
		{X: Fp{0xc063c8bf7cfda3a0, 0x3d06f28aa03a3889, 0x33bf334034cea12d, 0x9e8ab32842f00a2f}, Y: Fp{0x578fe5ead8dc64ce, 0xc9d7821ee485c016, 0x917c63250c4df26a, 0x9b389d9ae7c93ee0}},
		{X: Fp{0x513a32b96cb92182, 0x935b6c4fdcfded76, 0xe5ff259b5d725e09, 0x27bafb2948057ed9}, Y: Fp{0xd188b04645a29070, 0x2055a17b3d94daa5, 0x4eb280e21170d6cc, 0x250caa6f09eca330}},
		{X: Fp{0xb191cdf3792ea3d2, 0x5b56f2502f5b926c, 0xfa2571824ac5a542, 0x3c59b4292ee78e19}, Y: Fp{0xb7d8467d442f626a, 0x210ef208a2151e98, 0x226c14169e227cdb, 0x508e85a19dbf0fbc}},
		{X: Fp{0x9dc4e9ceace1727f, 0xe051ea6ca97dcbe7, 0x6112191fdbbcfc9d, 0x18616a7362143009}, Y: Fp{0xfa53f295bcdf106a, 0xf7e373cd8ee24b42, 0x5b64994e6eabb3f7, 0x7efb9624dd2f1063}},
		{X: Fp{0x3fb9e3132d8e0f2d, 0x6fda58b5c4f2e2f0, 0x94ac5a8bed70310c, 0x492695db1ab21466}, Y: Fp{0x6e71643dd5855cce, 0x40e744e6dc7d497f, 0xd17c3e54d589046b, 0x543bde2229b04866}},
		{X: Fp{0x713aea261cd311f9, 0xa18d8bcf9ee6f729, 0xf13c1d8da70ae48e, 0x87d5494bc00b5319}, Y: Fp{0xac2e880a072d778f, 0x4358fd12ed9e6b0c, 0x326c0eef62ee4ed1, 0x25620ab2da99e0b6}},
		{X: Fp{0x12298ccc4b53b54b, 0x650913ccbffb0e05, 0x0359e63fbeec0338, 0x50f360d2a64a7bb7}, Y: Fp{0x888df80002d67255, 0xfa2a0fdacdacb92e, 0xb54474453399d3d1, 0xa3bff55bd051b78c}},
		{X: Fp{0xa7d29fc81b2fdbdc, 0x5c3e5d6aa652b2cc, 0x38f8e97033e5fbc1, 0xa53a385b9492c9a0}, Y: Fp{0xf97560c87e34a63b, 0xab61058e451c91c3, 0x5954dee2126cab65, 0x34926effca99fd9f}},
		{X: Fp{0x53fe393ea08aacc1, 0x5dd251803b464b66, 0xe74dbc59225ae34d, 0x5ec16c3a35ff282c}, Y: Fp{0xf34eaa93377a031e, 0x7fc3092e77024c41, 0x04e4e6de86835288, 0x269354ede7b2e7e5}},
		{X: Fp{0x2ff09238fccc0fbb, 0x55ce9ebabf466e2b, 0x1546ca4d2ac19000, 0x488b293d66e21f0d}, Y: Fp{0x8566ac129edb6d76, 0x9f7d7ccfe2d0dd31, 0xef645e8e117785e0, 0x503b274129d14859}},
		{X: Fp{0x6c22ef59cc6953c6, 0x4adc8da3bbe603ed, 0x93d3b53f9b94b85c, 0x1e28332e78a9b450}, Y: Fp{0x6cb0f3355ba99c67, 0x8b258aae48225131, 0xfddf75106118b84c, 0x503285848f85f4c5}},
		{X: Fp{0xa57902a2e256c5c8, 0x0d6f4dcc65c101ad, 0xaeeb142fe5c2ffa7, 0x74a139cf59630072}, Y: Fp{0xb27a2eda769f7bbb, 0xacc1b32550376f3c, 0x66a548bd3cba2ad3, 0x8913b302ee07d4a9}},
		{X: Fp{0xfc85d50b52b08403, 0xa9f789cf9654e9b8, 0xc2508d928b379434, 0x24ec83d72f1db182}, Y: Fp{0x387a33d4979c6db2, 0x344c5fee2e356fb1, 0x8db311ad13de8542, 0x5eafc0cbb0100265}},
		{X: Fp{0xb7488a9236ecd795, 0xd0e8accb365a8a3e, 0xed62b0d94ee6621b, 0x5efb988f217a179c}, Y: Fp{0x63f54d20ad357202, 0x362eb5edba2ffd2a, 0x59094c74c7b64447, 0x94dca4444355071f}},
		{X: Fp{0xc6d641f8759acb96, 0xe7620267826b092a, 0x83ef6dfe8f8b31de, 0x7f292e9a56923670}, Y: Fp{0xabf14debf0b4dbaa, 0x3b9242e2fe3c5e8d, 0xfd0342b8ac57930f, 0x3adb83597425951f}},
		{X: Fp{0x684914c935c4759d, 0xa63e4d2f1540d39d, 0x489c68eae28b2f78, 0x1ecc43ea678ffe57}, Y: Fp{0x1ae60791be0c0f4e, 0x91aa430d616d3e33, 0x26e1e502c6d8201f, 0x2acaa06df61d77e2}},
		{X: Fp{0x623ab20f54733678, 0x48b4e5777742ceb2, 0x6655a7932eeac59b, 0x15aa6c2ef2ef6854}, Y: Fp{0xccc5a83577acd8b4, 0xeb06346c2dd2a9b0, 0xd458026c7db1b1c5, 0x290ec78d2a83e7a9}},
		{X: Fp{0x6f8d5b56c9bb5d64, 0x69b2a2441b1d8013, 0xdf384d9d84cd17e5, 0x1aa25b7d332a6b6b}, Y: Fp{0x63a76f55ed88a687, 0xa820d8af63d5fd4d, 0xc20926d1ef21df9b, 0x0a590f981e695e66}},
		{X: Fp{0x97d0f9a6ebd5a1ca, 0xdbd95cb15a5b0551, 0x1307881d1fc657ad, 0x69bdd70288e60430}, Y: Fp{0xe487dfb3ed4a0874, 0xb0d4fe5754b6f53a, 0x587237c46591235b, 0x228836ca20172d5a}},
		{X: Fp{0x6cdca03d5c0060ad, 0x12016d1959aa198e, 0xb31858280b0643ac, 0x8c56097e658dd355}, Y: Fp{0x2ddc01341b32478d, 0x58b3eae9aa4d8466, 0xaa0d3796584c4c4e, 0x1000ac19758bd21a}},
		{X: Fp{0xf5a3bf71f4773608, 0xd581b079a69426b6, 0x521b841b58dcb014, 0xac715603fb8db4e9}, Y: Fp{0x555109a9249c3fa3, 0x3070b3b5a4e28462, 0xe8a4069ac739fe53, 0x37e88172b681b350}},
		{X: Fp{0x9485334af47f1bc8, 0xbf8cd49902282ed8, 0x3828dbf48efc6874, 0x4ec6a106a8d1e9ef}, Y: Fp{0x4ad29cee30c000ab, 0xbc7e9727f0b40c14, 0xa4ed0666a5f24330, 0x3355489d3787b62a}},
		{X: Fp{0xce9c0f463122e431, 0x3b5edde37434794d, 0x4ffa70c5a1827798, 0xad30374e93f1f043}, Y: Fp{0x541c0633dfed9966, 0x2f08b523f34deac0, 0x89fd13bc2659e481, 0x48814d74ef0dfc15}},
		{X: Fp{0xc1dd5ee371806cae, 0xa8d3221c518a8ebc, 0xe16740e4fff40cf4, 0xb2d7959d2e8715e5}, Y: Fp{0x6b7eb08841be1b2d, 0xf0a3ebda6021374c, 0xabd18edcde9a9c84, 0x6d0b11a9fa2697e0}},
		{X: Fp{0x3248a91411130201, 0xbd1235aa9ab7f2b4, 0xc6f3c002f9a4e1e9, 0xae652c9b3feaab15}, Y: Fp{0x260dc04cb2219319, 0x3eaafe93c232f0cd, 0x294152d737b711d3, 0x99cbbff7853ce72e}},
		{X: Fp{0x4e1e6ce8e89d364e, 0xe46c6fe78b353fe2, 0x18d536303d2fb7d2, 0x261e880766a419cc}, Y: Fp{0x240369862716f642, 0x2665214d70f4fa1d, 0x87c25068a05332b4, 0xb38b3eae21eed931}},
		{X: Fp{0xd5b03c6d1529bd8c, 0x3d59147b1575b31a, 0x280536797f229ed1, 0x307a039834610309}, Y: Fp{0x743af371c3327f15, 0xbccd5bc2c35ec96a, 0x5d28875a497ed8f8, 0x7605cd5e6987a08d}},
		{X: Fp{0xe7545bdf7859b7fe, 0x7b657d8254e13769, 0xe3b1543117ed7ea0, 0x70276f89e3f5382e}, Y: Fp{0xaec253478cfe9a0c, 0xdd4db27535d93ca5, 0x681b3125631eb9c5, 0x0dde3908fb18637b}},
		{X: Fp{0x75aeede999e4220e, 0x0d47b2c76f02d2d0, 0xc90629d775f09dca, 0x43ffbafacf64df62}, Y: Fp{0xb59f67acc5ad334d, 0xa9c229791b6e40ab, 0xf86fee712b7d5509, 0xb4854078808e8d9c}},
		{X: Fp{0x1532194768026f9c, 0x672223712d85a033, 0x7968d1bc5d745954, 0x7c67a40ce8f1e868}, Y: Fp{0x5ae87e196b166756, 0x8aa57848147409c1, 0xf5f194df29701bd1, 0x3014b18de9ea07f2}},
		{X: Fp{0x6743b3c131e2c4af, 0x41244c425c956b48, 0x4e4a90ff59057d1c, 0x3b647acbc9079af1}, Y: Fp{0x8b620be9bed6d08c, 0xb3ebc2c7ea16b11e, 0xf4805f75237d4b8a, 0x69570b65c14490ae}},
		{X: Fp{0xc3cb18a323074fdb, 0xe8c7b31aa28a9017, 0xdda6c272e3df48bd, 0x2242113242b2ff38}, Y: Fp{0xe8c1eecc6cc7bac9, 0x3b5e41d21e2afd5e, 0x86672d42bcad1816, 0x9fc41f848200cc57}},
		{X: Fp{0x34bd23093ab99ac7, 0x6fb1d799a69e8623, 0x730c555b0b45f764, 0x6083b612d476dabd}, Y: Fp{0x2639506fbb2cb3d5, 0x042431a24fbb22f7, 0xd0a9384d11e1147f, 0x68274228df2c4d26}},
	},
	{ // i=5
		{X: Fp{0x5d65dac95f39dd0d, 0x3fc58447f95780ac, 0xeba6d554140ba5cf, 0x984910555f21479c}, Y: Fp{0xd54e0b2e61ef1175, 0x7ca0267821b4fa3d, 0xd00aae9e9a96327f, 0x8403fdc7e0a3079c}},
		{X: Fp{0x5a61044f2e9d0776, 0xda1dfa7254c18c0a, 0xfa54d26c98c24b12, 0x4dd6030e9d429a1b}, Y: Fp{0xb1dc4d77bb0c7d8d, 0xf8803c620f6c8328, 0xc69b6a8780ec2b26, 0x61a84ccfd21a8ba7}},
		{X: Fp{0x1a8d140b8be96a0d, 0x4567d4a6ffe3910e, 0x2105d2e27a82f81c, 0x660ebdbf7eca2a36}, Y: Fp{0xc6cf0baea6eb65e5, 0xa30193c2dbcdcc6f, 0xd2bcebd112c9db8a, 0x50613b494036e5a6}},
		{X: Fp{0x710a48d7188c6f71, 0x4c252287ffa3fd41, 0x97e2ce70468e4221, 0x49bad4407e4f8dcf}, Y: Fp{0xb0909ee6f74d3338, 0x86739d9379dea438, 0x3699e3f54f4ecc84, 0x344a4f1243b20375}},
		{X: Fp{0x16befe26a04f3402, 0x9d99aa07c3a33044, 0xdc58e532aa346386, 0x94a227b25c47d51c}, Y: Fp{0x01eaf320dc8bd087, 0xbd7c1bb46d982f17, 0x148b5bbf9e264a37, 0x95263bc12369485b}},
		{X: Fp{0x8aaba5b9897f5092, 0x2a202d3e65cacc78, 0x9da8964d7f99955e, 0xa67c676d252c2185}, Y: Fp{0xcb56b10ea9b241ab, 0xce8b9b13cb0cb236, 0x5fe9d60cb01c56bb, 0x02fd70a7f82cdbf4}},
		{X: Fp{0x63a277572ebffd8a, 0x25fe34a1b5393eab, 0x9d6e6407c8ed0b7a, 0x3f65b8072ed60f08}, Y: Fp{0x0ae79f9ea224f4a0, 0x69a8115fd2246253, 0xe79e27f31e25449a, 0x84869c901acf0524}},
		{X: Fp{0x331e8b8909d8982f, 0xe596f0471216a737, 0xea2c8e9e743c406d, 0xa13a325c9b73b3b0}, Y: Fp{0x495f6f12d4f33d07, 0xd8f17e959b5193a5, 0x32d657becf8f3e34, 0xa93c2bcc6e1dc135}},
		{X: Fp{0x75a3505b3bc29fe4, 0x307841ec0e8e720e, 0xf8779711e7843ac7, 0x685948279a1e2d27}, Y: Fp{0xf5bb0f6f0a523283, 0x2b3403bd60edc702, 0x6d4ed61ed1c146ec, 0x7443036128c34f13}},
		{X: Fp{0xf77f006196bc0ea5, 0xed76c962af7b071b, 0x251b7e62e7ef2978, 0x99a510aaa33b0336}, Y: Fp{0x20e8a76bbe50c534, 0x6b9a8707cf88e8d7, 0x59c9fe522d52f723, 0x9bbb2547de2aa28f}},
		{X: Fp{0x834ca4fdd2709b61, 0xbe2a59deba69bf43, 0xa0140dbbf00b9d1f, 0x0f3aa2ba2b5e8363}, Y: Fp{0xb7c58d383923037c, 0x64b0119d3b4dd6ce, 0x9de543c57b03de51, 0x1643eb37bc9018fa}},
		{X: Fp{0x0384742ede0e5cae, 0x54e10f8cc2b8834b, 0x4ca4c26e56ca9abb, 0x609f91585c9a5112}, Y: Fp{0xb275564dbcd50b2d, 0xf56185382613a156, 0x3c508b1c92aba979, 0x45fe516b010dfd97}},
		{X: Fp{0x7d1c9a2ddbb80878, 0x2983cd7c4b5cb588, 0x51fe4a40cc86c711, 0x3b4908995ffb82f1}, Y: Fp{0x98468e6e0bdcf376, 0x74424b1bcc640184, 0x8c9da2aa087ce5bc, 0x1512eb021cff9cfd}},
		{X: Fp{0xb1fd5c9c55742b0e, 0xb206223ccb84b5db, 0xf031938512915ad0, 0x120a9e16d5e9c1ed}, Y: Fp{0x380d4001f21c0a08, 0xf0026da548b8fc07, 0xe111ad22aa839516, 0x02628b34e79cf3d7}},
		{X: Fp{0xe14d20dc1f2baa4c, 0x034a948de3a9ec21, 0x803540a290e7f390, 0xb08ce50a5188d4a6}, Y: Fp{0x08876292175ac4a0, 0xdc76ab27b1dfb9d6, 0xfa6139409e808e8d, 0xb226d3395cad13ed}},
		{X: Fp{0x258dd9131a5430a1, 0x6ee12bbc57594b76, 0xb74c7f9b123d72f4, 0x9ad1e76e6f0766f8}, Y: Fp{0xba2ed52fa526db57, 0x191a5fd866227f53, 0xb5c5b2c63440a56b, 0x5cebce52ded9c695}},
		{X: Fp{0x0b56806b9bf9acbc, 0x6a3452da004aa736, 0x08f4b94f0b7c0acc, 0x69d33fa50ae525a3}, Y: Fp{0x94e796434b646dac, 0x89b69a4329e5b990, 0x88ae04898b609e70, 0x66232901c8d26af2}},
		{X: Fp{0x75cf986c98cb0510, 0x8232b02a344bb8ef, 0xc0cd46b9d3ae8aec, 0x149b0be1784393f4}, Y: Fp{0x4b6e6080f72901f6, 0x14d4f3f316f4bbe2, 0x513dbbfe922e85c9, 0x7cdd3146a7fcf873}},
		{X: Fp{0x3fc5c48e989a71d1, 0x93ee82ee71c4fe94, 0xd36723cdaf51e1be, 0x6dd3acec225f249b}, Y: Fp{0x44d31da31ee2f3f8, 0xbffc57f32a3e0627, 0xa52e33f26f34094c, 0x412de3ffdcc6b2e4}},
		{X: Fp{0xa47da6192fde1fb6, 0x7c22f59e00c1936d, 0x0090e695f4bd51c8, 0x070615fa9152f113}, Y: Fp{0x172a10bf73641838, 0x3ebfe471e668e48c, 0x79cf8f92865eb83f, 0x6f046088f6b45b3d}},
		{X: Fp{0x7762c923471fe139, 0x4b1f4848bde4839b, 0xd01674c9dd74b4b7, 0x6752836d406a2311}, Y: Fp{0x58b8ef5501feaf46, 0xf93ff9a619e9d113, 0xcbeace2b6fff3875, 0x189db7d60bbf445f}},
		{X: Fp{0x16f333b12c885f85, 0xc86fb605742dfd00, 0x3d162c9f99e72924, 0x959428cc70396c0b}, Y: Fp{0x02064f9ebeb0ee7d, 0xc879087da700bd1d, 0x0874a389467d612d, 0xb041d1e99da4ab34}},
		{X: Fp{0x801eee1bc6571d08, 0x59b2e88eb52cd16d, 0x6ffcd0e0ffca4b79, 0x17d8d84d2e740a0c}, Y: Fp{0x4c5b38b4a476c2f4, 0xd3389ddb6662441e, 0xcdd3488c25e92a9e, 0x789c110b1bbf8916}},
		{X: Fp{0xb26cebe52a22d9b9, 0x7f1f047691a2fc30, 0x10d126323d45bd87, 0x22cba7a154321360}, Y: Fp{0x04a4d5e600ecbe8e, 0x8262782807648da8, 0x5b9e870c92761994, 0xaaae25b37a5ba74a}},
		{X: Fp{0xf53565ba0d8ab64f, 0x814fdafeea4b7aef, 0xec3e09d4a61e8478, 0x4c664bbbd37a2091}, Y: Fp{0x18f001889ba91a96, 0x755d72e94aad0b96, 0x7853f91cd29e0743, 0x4232b175a8c960a3}},
		{X: Fp{0x4914568a59e8e9f7, 0xb95d1de7a0be5dbe, 0x2c3b1263ed40eb6f, 0xaf91a0edece6e554}, Y: Fp{0xe2feb942a67f0319, 0x4b6ba3a599bb44fa, 0x9becccf10133ed4b, 0x8bf974c3fe62ed4e}},
		{X: Fp{0x20b039ce533ad805, 0x884a691b0a32abaa, 0x847ec5347d854336, 0x5ff98d0881765c3e}, Y: Fp{0xe071e1769b88e2e0, 0xeb8330a0dcc474ee, 0xd44a3fedcc15378f, 0x873a277dcb37c0f3}},
		{X: Fp{0xccf6f92f98626631, 0x1ec21bf514670df2, 0x55677f869d52a514, 0xa81590d714803019}, Y: Fp{0xeff622bcd99e7d64, 0xf7cb0091547f7e78, 0x9977774def83b580, 0x15e952ad5f353e51}},
		{X: Fp{0x774821c4ba974767, 0x0a608c8d6b5c9c59, 0x0aa9695ee7de7de7, 0xa0e8e4c7b6d4744c}, Y: Fp{0x6d09b02f2238ce22, 0x8545f257c1d76ded, 0xc481c72cfef68d83, 0x44aa9e971e9dd442}},
		{X: Fp{0x23bf71a945ae1ae5, 0x36c9c0461b0058d0, 0x83d2513f88da26d5, 0x93f8f261d91cde53}, Y: Fp{0xfc9031f13a2eca11, 0x1cd2ecad3ff91b01, 0x4d2984e78810f9ca, 0x213475f23ae59f71}},
		{X: Fp{0x1fa4838745b5d431, 0x42871d76aef440c1, 0xfbf74cec782e8ae6, 0x1c2d309bfb74f1db}, Y: Fp{0x2f0fd8bb723d8fe5, 0xa792ab5d93c7c6e2, 0xdf0b095fc428652b, 0x1e0cae5b03b03047}},
		{X: Fp{0xc53329161e3a050d, 0x82372b084b3ee6af, 0x13c4b2a1d1d508cb, 0x986dee83947cd3b4}, Y: Fp{0x052413a939d861a5, 0x0be98b2880eba2d9, 0x10b11f12d2e8fdd4, 0x4dc5f7fab6be6716}},
		{X: Fp{0x4d2aa88eb1e3bf13, 0x87ea092d0573676b, 0x20fe3186c621d8e0, 0x3cfda0d66d77857b}, Y: Fp{0xcb16f0c3f6bc69a3, 0x755ac607c64e10d0, 0x10b9fcfc70927cce, 0x99f243dec9e0436a}},
		{X: Fp{0x80024a62f7f25a18, 0x08e1b8ece2e1c614, 0xbf14dde32547e8b0, 0x0aa5550d56125aed}, Y: Fp{0x69bfb94e9ef02f74, 0xdd004e6c24819570, 0x1b7edda2718805be, 0x08dd00a1449450d0}},
		{X: Fp{0x0e66848e4d996c5e, 0x4a9e98924e7e7d9f, 0x21b74e2393cc41cb, 0xaf66a6a2191571cb}, Y: Fp{0x2c04d076434c93e7, 0x89ccb746364cddd0, 0xed57e1468110bb32, 0x31567ed3f68a30ef}},
		{X: Fp{0x4e1638f832f437fc, 0xcefd9db0c935da9d, 0xc2563ab5fde98f3d, 0x3f24397661c10cb5}, Y: Fp{0xbfd0b378d55d6e7b, 0xc6288b772e53fbf3, 0x3be226a59d223031, 0x0d6b8883a3afa3b5}},
		{X: Fp{0x44cbef088b393e43, 0x13f6c0304da29dfe, 0xde986a5a44cd245f, 0x3d3c4b793ac4c9fb}, Y: Fp{0x2691262cce1b8ff1, 0xb9a75627b12f9cba, 0xffb4abdc836a1f6d, 0x7ef6c85b18b27c50}},
		{X: Fp{0x0b08be9984fff9d2, 0xbf851843ec5622d1, 0xbf5b2de1dec3cc25, 0x355cf54e653f2c9b}, Y: Fp{0x96613caef2d25169, 0xa8773d17478b3226, 0xd7467a587a9b26d8, 0x67651c9c05064f56}},
		{X: Fp{0x6704e59c0607b263, 0x586d860f314e8038, 0x23bc461e2d32d00e, 0x54a9d41cbaa6ecdb}, Y: Fp{0x1ed455b647bc33f7, 0x9ffc79c336a20d30, 0x3451159597a5b30e, 0x020901c4783d588c}},
		{X: Fp{0x3b39c202a866e191, 0x605a7da8386e4354, 0x4f6def44852148c0, 0x735ea8ddfee15f46}, Y: Fp{0x07e665cc9dd84ec2, 0x5bb713a67c0e65b1, 0x09554d705a40b5a5, 0xa35b07d4319569fe}},
		{X: Fp{0x1df5c45b71d21ad7, 0x7e15f2d90e820d28, 0xdc6f2bebd001db80, 0x0f758f8311b7d3ae}, Y: Fp{0xe064cc6a917098fc, 0xb47782f048068a18, 0x519f9a4b5a69f8cc, 0x7cd73116ed502c6e}},
		{X: Fp{0x0af59d2f1dbd4c34, 0xe6ee7832d143c57b, 0x256f3c29afa87af2, 0xb0a2cd41cb14a09c}, Y: Fp{0x845fa359725b383e, 0x5a930aa72c9cd21e, 0xd904fd7a00191070, 0x78546a028be32ebc}},
		{X: Fp{0x115a72e80aea2a37, 0xf0e40a7436a5081c, 0xdb7bdc0156fd17ab, 0x71c523cae32c750b}, Y: Fp{0xfb995f21b601e4e5, 0x62c19f2b85974708, 0x271826701f2166bc, 0xa6aefffd25d2c46b}},
		{X: Fp{0x70f25b3b5ec773ae, 0xb3355188e29e72d9, 0x9dca758385d4c337, 0x47c9241d6d73aa93}, Y: Fp{0x4fd2c7de1baf9cef, 0xad35c1b8a0ff3993, 0x259303214e3ebe10, 0x29d102789361b0fa}},
		{X: Fp{0xf580a83ded6509e7, 0x5bd0a5d8fe8a5485, 0xca8e2007811cd2eb, 0x69bf96f49afc2c92}, Y: Fp{0x3d8a761451be6f5e, 0xbd16d00fa6f291a5, 0x7cfede59852f6959, 0x8fd670fa32d4f636}},
		{X: Fp{0x0f6d9eb555915fbe, 0xf8f0fbff777da68d, 0x381c6c485f83387b, 0x6fbba73f31a68ea1}, Y: Fp{0x03c72a03569275f9, 0x0556a2e99cc0a5c6, 0xf897c4b3ca8ef773, 0x2c3241bca33a9f93}},
		{X: Fp{0xc920006fd3e15f87, 0xe5105b2bc82077ea, 0xc3095b3ac6c063e0, 0x7d4a638118e7c0a7}, Y: Fp{0x256eb9400dfeac0d, 0x7685e400582e19ff, 0xe5896e47c21c1b32, 0x7516d1bc3962c315}},
		{X: Fp{0x803197a3f74e870f, 0xd4d5d350859f20cb, 0xf8258584e0e792fa, 0x2d5454af1d06b063}, Y: Fp{0x9e9227ae134dca19, 0x8bda86668ecbe802, 0xaaf064f168e7e47d, 0x57293e821878808c}},
		{X: Fp{0x84ece7769e20eb8e, 0x35599806a3821869, 0x8ca0d9f57209101d, 0x30746c2dd6e28b3a}, Y: Fp{0xf0c7edc6478950c3, 0x1e799d82b03bbf6d, 0x918ac25690ec7177, 0x014380716d6a952d}},
		{X: Fp{0x8a842fe798cef283, 0x9b2c863d6aa21f9e, 0x250f07e91d28f560, 0x15660adc0b270bf4}, Y: Fp{0x57628bb1b721a572, 0xc8a991398c168768, 0x02124c88a853cde0, 0x2b64a2e5d75073c4}},
		{X: Fp{0x61bc01d25c943703, 0x552b38971371e779, 0xafb0ea372072fff4, 0x8baba1e9f1510cce}, Y: Fp{0x849c87a568aacd1e, 0x96e6ef99b935cb1f, 0xfdd8217e8dea15a0, 0x00ec7863e2fa5cfb}},
		{X: Fp{0xed7209791a0362a0, 0x712bb460d1688288, 0x90fc571f09866bfe, 0x4d4f998a31ae623c}, Y: Fp{0x6042086912b8edc2, 0x8e9986d722e7933c, 0xca6b27d73887af6f, 0x40b3c8d0b467e1e3}},
		{X: Fp{0x0ce357b35cae8bb3, 0xaeb35da3a10a6bb7, 0xdd21cfc20afd8cc5, 0x0ff3db01f1bf5295}, Y: Fp{0xf54cf218276f53d9, 0x0dc3927f1583fb56, 0x876605ef3cd9ef88, 0x27b4b0134d9874b6}},
		{X: Fp{0x316aba88cd6d16a8, 0x1d849d35e77cf257, 0xfcd4593ffbc9da21, 0x2ca2b2c797939c91}, Y: Fp{0x1d0428fbd05abd89, 0xc12f1c601f8369d5, 0x1066c2ba5383e60a, 0x6c699a6b486ac447}},
		{X: Fp{0xd90cbe2614456daa, 0xfc56439dbfab108a, 0x5f2eb7a6164ebd42, 0x4156f06b671f6682}, Y: Fp{0xd276e47ce14fe00b, 0x87619d45f98475ce, 0x2974379effc97e51, 0x666adb63f265d912}},
		{X: Fp{0xe9b6fa20d5cce9ee, 0x596a0d21fd98c519, 0x26820129fd153c64, 0x6ad649baa4a9bbd3}, Y: Fp{0x9f974a7882522057, 0xc4cb655a6b6b9ffe, 0x7c6195df898f0275, 0x8b776faee7c1fd31}},
		{X: Fp{0xe4cdef59f1e06d87, 0x1e2c0350f31060df, 0xf913c7a7d6e1b6f4, 0x44a13dec971a1cd8}, Y: Fp{0x943b74113781518d, 0xeb27258d4b9d91c9, 0x8fb104a50067e7bd, 0x51dbbe524596936b}},
		{X: Fp{0x4d4c056d36636593, 0xe057ba8a03055da4, 0xae67ae53d9334148, 0x4b2aa4adf1ffda67}, Y: Fp{0x7f8f7794224f7688, 0x6cdd74630de7324d, 0xf06e50620586a094, 0x8effad61f39c485c}},
		{X: Fp{0x185d86d91e0f68c8, 0x02b0f61082ca209e, 0xcd40ef88ed904644, 0x1baccbbfc00635c1}, Y: Fp{0x4df67f8255e17d7e, 0x0ede9f6bf8eb86ea, 0xe87afb677497ee2e, 0xa9102e6e9d999770}},
		{X: Fp{0x7ea97b815053b5f6, 0xf1137f78ee2856f0, 0x65265dd197565e8a, 0x77477ff68357e333}, Y: Fp{0x6693050dd3098124, 0x6bc052b2d8ef5db9, 0x456f20f5142b6bfb, 0x3d6d1400d8534d24}},
		{X: Fp{0xa22f8ef3c60d9253, 0x30e61298e3c7a461, 0x9b51400710432a48, 0x875db75eecb00393}, Y: Fp{0xba5f3791c9d71f08, 0xbae7d59dfec0c7f5, 0x9c5f551be730e731, 0xb384cda604077813}},
		{X: Fp{0xaaf681dedbb8b009, 0xb7d3f39e54c59cc2, 0x25c76b010977dd55, 0x1d6d9ee69c146e96}, Y: Fp{0x4fb4d9442bf34908, 0x600105692b98aa51, 0xc8160eef0442b6ec, 0x46910073785baee8}},
		{X: Fp{0x3c75655fecaf801c, 0x1702223345781dd3, 0x959837845e00174c, 0x5890ad27654e7e75}, Y: Fp{0x5bc8475059b7238d, 0x6666967180ef37be, 0x9619ed219cc5c986, 0x9371d9ccb94bfb4a}},
		{X: Fp{0xb865e2b4203b5303, 0xf7bc1b72a2e99b2f, 0x6a614ca3f8d8b178, 0x27ee539cb177cd94}, Y: Fp{0x5622cc7ab860770e, 0xd60f7e041630ea87, 0x201ea6ac3b017430, 0x01d4d02c9d42a84f}},
	},
	{ // i=6
		{X: Fp{0xd5fd5fbd5fea0392, 0xbc0fe873330f8b37, 0x23586f46375b9e35, 0x560186e91a4e2954}, Y: Fp{0x1228be49737733a2, 0xc72fe4b9c75798f0, 0x6df1e696a3500559, 0x05f06d0a5cb711f5}},
		{X: Fp{0x18a3beaabb204d2f, 0x5c484b6d69c2a54c, 0xa06ab9dc8be92f7b, 0x3abba2c1e479fdc9}, Y: Fp{0xca9f819a3be011d9, 0x6c3cae754706ee12, 0x2e1b7b9114663e92, 0x9392d65c8994c5fd}},
		{X: Fp{0x29d9174490dc980f, 0xfa66d07d5c538b81, 0xe498d14bb9848703, 0x1bb7ce2e698dcd3a}, Y: Fp{0x6160983f3e1f4856, 0x3637f578e7ea7ce6, 0x64d1b77d689e8c67, 0xa4adfb7dda75a155}},
		{X: Fp{0x0edc097467b10cdb, 0x0b792370525ac872, 0x555dba3162990545, 0x1233beb648b68c80}, Y: Fp{0xcc6743e4aa917d91, 0x95f0de46b919fa6b, 0xcd03c54bcc53a7e3, 0x2f3c4f2e848f270d}},
		{X: Fp{0xd9c981f8c6ed393c, 0x2a31cad2163e13a7, 0xd7abb4f7354ddc1a, 0x7d49de8a5871941a}, Y: Fp{0xf00f1f2023adc758, 0x0a7bbb2193134cb9, 0x2fc8b190301fe7d2, 0x0ebde1b0711ebbe1}},
		{X: Fp{0x47ab4f6a3ce4dc6e, 0x48beb7041eb1b1a6, 0xd1e3ad1aa62732ab, 0x2cd8b55b1cbc8e92}, Y: Fp{0x94f031e57d82221c, 0x83f95cbb9c7ae50f, 0x0c1a2b954dd57c30, 0x8ec2ab957b251ca5}},
		{X: Fp{0xf8106051354e423d, 0xbb9896d006fe8445, 0x652cd6edc7c6e010, 0xb2755f00dae05812}, Y: Fp{0xc1202b16ef765ff3, 0x50f82f7624c4024d, 0x5188cee21a6d98f5, 0x848e2f52248b30ec}},
		{X: Fp{0xb3cef82512cf7704, 0x46aa170babd33747, 0xb8e68ab766f8b897, 0x5f937148676c0219}, Y: Fp{0xda9470fcf543f1d8, 0x98dba820637ba338, 0xa6feef1becb9b25f, 0x37d7f834e6e9200f}},
		{X: Fp{0x0c3f7f786373a9f0, 0xc912b04ddfb005de, 0x446ebca68c6ff4e3, 0x4e4e62632fb8e27d}, Y: Fp{0xa89c1c3491a13904, 0x50162b35ba87f651, 0xf672579d777b563c, 0x2973895b33e849dc}},
		{X: Fp{0xf827245805c0204e, 0x6843b47462587b80, 0x14d430608598dd41, 0x71311e1e8a469e17}, Y: Fp{0xf104fb2571957ef3, 0xfa3580c54ee1e5c0, 0xfaddedf6ea380b07, 0x1991264f343acca4}},
		{X: Fp{0x911794fa5f6f828d, 0x032d382315c69cb5, 0xa37071b6babadf2a, 0x15554568af1f3e7c}, Y: Fp{0xb4a05e25361fca35, 0xbee2a5b8f1639ffc, 0x0020e14763d699b1, 0x682355314cfd6cea}},
		{X: Fp{0x58daa3930b3f49ce, 0x35da171e9e446f51, 0xc7c5f155ec4262ba, 0x471690eef4f14a44}, Y: Fp{0xf2b6b8bbc0bbd512, 0xe43bea992547d5f3, 0x07e08d99826cbbe5, 0x29e8bb5e5a26d20b}},
		{X: Fp{0x7d52090dccd04bb4, 0x82f0f3e9f209ada1, 0x652b8b94be8c97c3, 0xb1cb18aa10d20c01}, Y: Fp{0xb8147511a3f6966c, 0x6252f56d8bd9debd, 0xabca9f2ebf84c3f9, 0x6c7306d440a9abf8}},
		{X: Fp{0x362f3264a66e4501, 0xe27099e06707f2e0, 0x1dd6bef9814e762a, 0x22474da233132fd7}, Y: Fp{0xd6898a928978791b, 0x3437417037091d7a, 0x4e8b8b6d254e6a0e, 0xb2fffa52a1d9fb6d}},
		{X: Fp{0x1cde27d4c94157f7, 0xc9dc955869c981ee, 0x1a98211f5a363e26, 0x6680ca1da7fa9d62}, Y: Fp{0x3023b24b75d2aecb, 0x030f1db3f7d2a3be, 0x9cb295e44e017245, 0x6ba6c0f32ef698ed}},
		{X: Fp{0x227bf93a83cdca7d, 0x923093c29fa15bf7, 0x63c34588b6592769, 0x7c45328a36736a5e}, Y: Fp{0x24084362b569484d, 0xf2572a08d12e6fac, 0xc17fae00b421ac88, 0x7caafaca90b1947b}},
		{X: Fp{0x4f5adebcaa5bb37b, 0x8ee2aa3d897434fe, 0x267a69211cd754ed, 0x42ce8cb53993ad50}, Y: Fp{0x1cfbd87058008537, 0x325bd6a56e32c016, 0xd7a27b6f55831610, 0x28fe158ab16a73c4}},
		{X: Fp{0x2033acd126c9dee0, 0x8125fbc78047a1ce, 0x6369da71a8078373, 0x3998e34e1183256f}, Y: Fp{0x5d49f6b36dded0c1, 0x145b5899fdb01638, 0xe04990a99d28baef, 0x5e2c9043e14a3220}},
		{X: Fp{0x2d3d575e001bf6ab, 0xa44ac9c13fa270b2, 0x694c9bf6f580825b, 0x56304121df0af132}, Y: Fp{0x403da2b16143db08, 0x2f8ffbb0ac653812, 0x71e91d92a099924d, 0x7b04dd258d9d1a05}},
		{X: Fp{0xd8b31342baa3dafd, 0x7d3ca235b1d3fa09, 0xbee94da93bc5b466, 0x79c2ab97a0073def}, Y: Fp{0x57d281788b85e1f7, 0x103e5fcc4aeff5c8, 0x1d1a3e1972752db1, 0x623d76f66ec7d834}},
		{X: Fp{0xe571011d9e1ff270, 0x96d75ae276ea1eb2, 0xed9cfe31566e33cf, 0x36c50489a1cbf392}, Y: Fp{0xd9e4e6d40224db27, 0x6b0591cb8f30d14b, 0x560d3e48632ba1ea, 0x387091b32fe31f22}},
		{X: Fp{0xd4c76c4a57e2cde7, 0xf140f8de74b094fa, 0x5f87b7d3355d58f6, 0x8420e3ae35887678}, Y: Fp{0x55a4324d40287fac, 0xf730c37bc0cddd0d, 0x750f82caacb00efa, 0x15ed74c98082c543}},
		{X: Fp{0x9f230ad64ae5e62e, 0x68364521b476d3fc, 0x2b4c285e56eeed72, 0x75b60baa666ef946}, Y: Fp{0x5fcd363c28333539, 0x610746326084707a, 0x54538d656f49b477, 0x3785a6e548d4de67}},
		{X: Fp{0x706dfe1c0f6a5f31, 0xae1de5f8225fbabd, 0x067015ee8cf2e59d, 0xb6391f05c9e58f7c}, Y: Fp{0xf8f929f5407acac5, 0xe41ed0e42fc8191c, 0xaba03541b7935f66, 0x727632d53c158f5f}},
		{X: Fp{0x25b81f48d60be815, 0xd9f9573d664ccf3e, 0xb5afdd896c296f3c, 0x6b29467797ceb3bb}, Y: Fp{0x8511966476544198, 0x6a76328ce1e7250e, 0x764ec7d8e7340c39, 0x7ba5884138359666}},
		{X: Fp{0xbb7a6a5bd037b6e9, 0xa9422c535f99ac40, 0x756bee51ffb02c4d, 0x578b0028e7aa8314}, Y: Fp{0xc8d50218c871cf6d, 0x468a661c024e6e6d, 0xedc5cfe083f176cf, 0x2509212207de2b0a}},
		{X: Fp{0x5b79167a82bc76c0, 0x1978193412dc7370, 0x06c9bd621f81b825, 0xad2596dfe41e7cbd}, Y: Fp{0xab1ee804e354a58a, 0xe35257b4ec619355, 0x2f56b3f1f5d797e3, 0x11a3df94c2764e37}},
		{X: Fp{0x1aacbd159824e6dd, 0x0f184ce29ff7fce6, 0x57eaee78313c21bf, 0xab4cb1860eb0bcfc}, Y: Fp{0x065b015084923e89, 0x873b295503134f10, 0x3da82d4fb23fff72, 0xa9f1c1c67e7addb4}},
		{X: Fp{0x60caa1a348a06444, 0x2d2dbf6095f6c7b2, 0xd02ceac661c096e0, 0x6470086de8ec1b35}, Y: Fp{0x3164822292da9159, 0x43337f5a1be84552, 0x916d0a2be0aacebf, 0x8836c8e77ece0c97}},
		{X: Fp{0x8ba53ffb8c825487, 0x9e8d76bd77deef1c, 0xe2be251539b85503, 0x15a06c55441a2bdf}, Y: Fp{0xab7f87ec720a6ae1, 0x43e53880708bc32a, 0xd100e4bee82e32c5, 0x787ee29aacb6214f}},
		{X: Fp{0x7f8a5789bd86b395, 0x11a073656f505a6c, 0x01493834d0d2f045, 0x6b18ddc7842e2e07}, Y: Fp{0x215741693b8317b5, 0x2441bdfe7ea3ac97, 0x2a0c2d40498b0d38, 0x44dfe61e2c7da1b8}},
		{X: Fp{0x52b721a20683c852, 0x3701b196ec11dbbd, 0xf74409866cbab57b, 0x0b7676340053034c}, Y: Fp{0xaad4b06351f0844a, 0x22c89909f54f1e1d, 0x34620c3978d79867, 0x4ef6a28d5d70fe70}},
		{X: Fp{0xa53242148a6ef561, 0xf978b426bd1dd9cf, 0x768a30c556e7bf58, 0x242048f587020a15}, Y: Fp{0x57be9753bf466ee0, 0x4e112e91f2042d8a, 0x7be3a614aa5a8246, 0x222a4577fcc37b6c}},
		{X: Fp{0xb4d450fbe2b1ad2c, 0x0ac82eff31ba0c77, 0xc565632f8b6a0eec, 0x6405b3251fcf6536}, Y: Fp{0x36f8019c84fbb379, 0x9dbc207114342a3b, 0x74d5b79c92f3d22a, 0x608c4326a535c43a}},
		{X: Fp{0xdaf9df20652f76be, 0xeef5161416b57b10, 0x1a3e3c0214674da0, 0x9e31d41f1de5fd3e}, Y: Fp{0xdc8be9bccf5f659e, 0xfa29b8ef7dcfd318, 0x6379a81a72dff274, 0x487b8cc9b76e185c}},
		{X: Fp{0xf9f83f44fc4a39e4, 0x4c482e79a9b936d7, 0x376dcfb696320448, 0x4a645fcd840a46b6}, Y: Fp{0x87e671b92e7a2878, 0xe3d0c8695f20f127, 0x9ea3b8c4202f82f2, 0xad1efede09faf9c4}},
		{X: Fp{0x091092d76f5b6a34, 0xbc3ef67f1ec256c9, 0xc5430827d73e5fd3, 0x0e3cf2dddaf0d2df}, Y: Fp{0xb24aac4dd66d46f7, 0x43f3cd07e7f7c7e0, 0x7e519eceeef34a46, 0x789b0b448401bb9b}},
		{X: Fp{0x68b0048ffb40bc8f, 0x3a4f1376abb4f868, 0x39183c5516d93cab, 0x1b6ab29feed296b2}, Y: Fp{0xde42edc57ee6c28b, 0x9085aba1502fedae, 0xbf10d8ebb87c189c, 0x6878bd1b7398cc3d}},
		{X: Fp{0xea73948a8f98617b, 0x91e3b465098dd357, 0x76df5782bbcae0db, 0x1146c449f1de634d}, Y: Fp{0xd454110e2236ecd1, 0x5f0095b334786203, 0x21e8214d421322e4, 0xb31bc6869e407196}},
		{X: Fp{0x6fa75cd11043f53c, 0x9e17c94fad6b037f, 0xdb334c6ea95668c6, 0x2d770ad48d68cdf4}, Y: Fp{0x22bb7c5b9f086011, 0x8716d2dd95b923b3, 0x6e0449c806cc3b2e, 0x468fe610e2b3305b}},
		{X: Fp{0x32a93d3a962b0ad8, 0x158334fea161066c, 0x9c9209ad34d5c0d2, 0x591c31452ad86d21}, Y: Fp{0x27c4d9aa0456cb47, 0xfcd4672cbfe1c4b2, 0xe72c13c677c97c2a, 0x25d8455a44f70c18}},
		{X: Fp{0x0969e41e8bf94ff2, 0x32b74c36fae4b741, 0x5eeaa42371e74c67, 0xa16702d9a9a8db57}, Y: Fp{0xa575fc05fdf3d3e2, 0x30a35984e8305bf2, 0x9a4dbd41401287b6, 0x26a1489045c610dd}},
		{X: Fp{0x129f967453a76fb8, 0xcd621148a25142b5, 0x28cf9e8770359fca, 0x7cf86782525615d5}, Y: Fp{0xdff49803e12c744b, 0xe97f53ceceb8a120, 0xcf86644ce347fd82, 0x8cb2c896b83aae16}},
		{X: Fp{0x9600092ad1fe7085, 0x18bc8a43be112bf3, 0xbf9e5f43953c4a88, 0x7e984f3a19934c86}, Y: Fp{0x14ce905540e0b627, 0xeda699d51faf8b8b, 0x47ac2537b876d6b4, 0x11252037b6bbaae0}},
		{X: Fp{0xeeb05237515219ce, 0xb4e84bd73f0d40be, 0x5f4a33d22c9d40ec, 0x381933b860d0f501}, Y: Fp{0x5e63a0778eba22d8, 0x7a4c4c0e9407c317, 0xfb2e618e73abde89, 0x50da427578a73587}},
		{X: Fp{0xc57269809c14010a, 0xb0ac9f781a5b2e3d, 0xf014c32d7ab2c374, 0x9a55c636ae20c433}, Y: Fp{0x3c87dc17e190cb8f, 0x33045b8e06426225, 0x1187eda2b64d1a06, 0x29d974e4e59b1c77}},
		{X: Fp{0x2ea4cb98eef324dd, 0x4af1f8ada70754d5, 0x13a93c1644950ea0, 0x07d9016a64dfd7d2}, Y: Fp{0x9e16a08203ebeb18, 0xf3f3d0faa460241e, 0xa958637ddb816db6, 0x9a36fd7d420794eb}},
		{X: Fp{0xe38782ed15b5ddf4, 0x239da1be23091eac, 0x76de605f9923813a, 0x8ea58e113e19911e}, Y: Fp{0x4d0af1ec2af9a605, 0x1c1192c02ae39868, 0x798c860ab205004a, 0x28f43a1a314b14a5}},
		{X: Fp{0xbd7997ca5eeabeb5, 0xb398cbd75eddce76, 0xdbe503c9ddc3f257, 0x5115ad295e471a5f}, Y: Fp{0x861f78ab66c97cd7, 0xcc796ee66ddefc2c, 0xb4cbf225f4e2a045, 0x8eeef2cc21ba28ed}},
		{X: Fp{0x9daad6614f25adb1, 0x9bb7f12c5d5693ea, 0xa648bc9c3c64b150, 0x0e3e32e0f2849def}, Y: Fp{0xbd117ace7639aaf9, 0xf2fc30a09d2b74e5, 0xde623f6165a3c78c, 0xa3d1e2f600d0d21b}},
		{X: Fp{0x9b77f1751b044de7, 0xabf98ee8cd4a3139, 0x4648e45d55277137, 0x97c44c91d3484990}, Y: Fp{0x3d6dd37ecf1b2876, 0xa8ae540907659d7a, 0x552126c891fb70f0, 0x1f80295606f07a83}},
		{X: Fp{0x4c22a712be4a744b, 0x43a060908162a0a1, 0xc0b41b6945eebfc4, 0x70e00adaf81da330}, Y: Fp{0x7a5d44521fc64fa6, 0xc1cfa10a09ae41f8, 0x32bbe9123071cf78, 0x9d52ca9c734c6b58}},
		{X: Fp{0x802e3523cc5bc446, 0x6557fce7f69619e6, 0xa8cf37f5cec72d9d, 0x9316d1ad62d49439}, Y: Fp{0x6c1cb84d186d324c, 0xe413a097b1fea491, 0x6b031caa48a5584b, 0x6f8c8eab8a578ae9}},
		{X: Fp{0x1ac458e5e4209825, 0x82e3e568391a7975, 0x090423f1c918fac7, 0x33bdc529ef2b7b17}, Y: Fp{0xd10f85db42a9cbc6, 0x88792b89205327d5, 0x7f107476d851b211, 0x84e5ebb90a1be914}},
		{X: Fp{0xcf68af1f1b3194a7, 0x1f3af358ad19f305, 0x2234418fc8092d37, 0x0700e3312694146c}, Y: Fp{0xc32c8ec22d007ae6, 0xda87b503f3e66460, 0x343d8ddaa5d87ad0, 0x94bac2703c990a1b}},
		{X: Fp{0xdeff960270c0da47, 0x2cffb293acfcab03, 0x9a18e6c5e20991a6, 0x36fa47b7524a6195}, Y: Fp{0x45775d516669511b, 0x96d7227a5d1c20f7, 0x8e3eabf477e18bbf, 0x92d4e04bd0315d56}},
		{X: Fp{0xffb5e0f5b5c19f6c, 0x95ecd5afe8a0d888, 0x194976c4331c64e5, 0x7fc94018fe0dd6ff}, Y: Fp{0xc5a092ec00b508f7, 0xc7b2f44f30068351, 0x6495bd980d1d30ec, 0x2f9269f844df188d}},
		{X: Fp{0x79d2258d3e74a056, 0xa49257a3493032f9, 0x88ea722f43829ec3, 0x4f7c81eae496a84e}, Y: Fp{0x465f4ae8275fc958, 0x5e083da54f3cbc53, 0xc7383726655be56c, 0x8af4ffac765379ba}},
		{X: Fp{0xb062fe07c5531d00, 0x4efdd2a9a3a76802, 0x636971f292cf5dad, 0x31a981d3b2c15c3b}, Y: Fp{0x03d4840cf2d1747f, 0x0ecad8f898b9b820, 0x44aef8a14b6b781b, 0x22136271c0aef12e}},
		{X: Fp{0xc87e4929af08e53b, 0x52f2c88d4d933067, 0x918523ed22ee9616, 0x6132e38684c0f5cc}, Y: Fp{0xb19d235023ca51fa, 0x344a31886eb6a03c, 0xac3779246cc16908, 0x08566c6579aa7795}},
		{X: Fp{0x7d85e0d05834b537, 0xe7a07af14e03d269, 0xdbfc8de5a216621e, 0x7717e0f2989760bc}, Y: Fp{0x572ed76cead614c9, 0x92769d9be1962524, 0xcbea8ff29e90aa1e, 0x401d0d5dcf5a0837}},
		{X: Fp{0x1a8d566bcea33777, 0xd64430aa0aac8c4f, 0xef66a6a77921b050, 0x39957dd80f07743f}, Y: Fp{0x13e2e473250a6fce, 0x7e4bd8f57190ad18, 0xddc58ded51455012, 0x06b729c1c1e83140}},
		{X: Fp{0xb201eec3445b26aa, 0xe0a12173f351dd5d, 0x8103c46692f05c51, 0x93b4a7b0edc6af19}, Y: Fp{0xc670e63c1b36cd9f, 0xa954d6375e7292cc, 0x57a82a213bdc8b8e, 0x84f4c878ccbd970f}},
		{X: Fp{0xa29717466eaf45d9, 0xfe427644e327a256, 0x281eafcc3fe0a37f, 0x4f7a30ed6438311d}, Y: Fp{0x36f98546dd3cc13e, 0xe07ade6b65ed4247, 0xa8786a78f45d6bf2, 0x4ef6fea507043f33}},
	},
	{ // i=7
		{X: Fp{0x022a68a31ccc0d40, 0x9adc3ca2f1671566, 0x5b5defdabc406c65, 0x0d9ace860b60425a}, Y: Fp{0xfcdf4d95c1648811, 0x39a24dc0d4f1718d, 0xf352833f8d5cc43e, 0x42556c036e501228}},
		{X: Fp{0x06ad096dd29fa256, 0x082cb33b26b1a6cd, 0x6c02062c477167a4, 0x8f83e8f1b20b9d05}, Y: Fp{0xc9f8310e0a045434, 0x91de29e4af52b81c, 0x998a089d7fd4af3c, 0x07a2edda08522307}},
		{X: Fp{0x5971fab8079074a1, 0xd609e298621ef8e4, 0x4e5dcc546016cb93, 0xaf82f810c7a32cde}, Y: Fp{0x015c679c9b406501, 0x82f7236b8c187a32, 0x32211212f34e87d8, 0x04647a368168f140}},
		{X: Fp{0x95ef449a609a67b8, 0xbc083328d112eddb, 0x667eb643e39dfd89, 0x679df851f2e1d951}, Y: Fp{0x4ed6c8b0b4385786, 0x48223e7ac4909149, 0x809613a1295521c9, 0x5e917a9b279b6bf7}},
		{X: Fp{0x93ff144e5a26ffed, 0xde9bde5f357411ac, 0xb7fb78a0bd3e0cf6, 0x8796c28fb2e50ca7}, Y: Fp{0x90aaffa003113c1e, 0x9544afa65b6ee121, 0x6657a483a966ebde, 0x9b500265add9a3df}},
		{X: Fp{0x47b240237c2fa571, 0x21a89138c251eb76, 0xa39d8dee5f88e63f, 0x597edcd4363684f8}, Y: Fp{0x2b847d0117c79294, 0x35a87878683e8f96, 0xf8ede5c4f1d42115, 0x33b952fc1c2d8243}},
		{X: Fp{0x276aa52d16686267, 0x590b6a8d0014b4ab, 0x26d746453fa2053c, 0x13f13bd33c8bc43b}, Y: Fp{0xfc32fc33c6383afd, 0x52f4dc6c68cb3e73, 0x2438b5dee4831add, 0x6f112c1ec2d37c6a}},
		{X: Fp{0x86820acc5f33bc3e, 0x85ab5efb4c5ca549, 0xda0a987542635668, 0x6336b9adabb080d2}, Y: Fp{0x989df77df93d0524, 0x65f599c1e3251290, 0x3d8178d3c8b6c13c, 0x7cfc9369ae9ff759}},
		{X: Fp{0xd5e71b7fa94a8fb8, 0x347065ebeb2b4e7b, 0x9d4c66d80c869fcf, 0x0eaa0526802320c8}, Y: Fp{0xd42be76241f8b578, 0x3c5b58d7fc5b0da2, 0x52653442db734b8f, 0x88adcfdb2bc800d1}},
		{X: Fp{0x65c8026a3fdd0130, 0xc5b0912cf8b523e2, 0xaaf1506a71ff3ef7, 0x2575b4bcf8e1ae6a}, Y: Fp{0x11da7f579dc62e34, 0x56250d8045851475, 0x9c5b568469a5628f, 0x0de416428492b097}},
		{X: Fp{0xd075c2ac5f49409a, 0x73a0427a7179935d, 0xe3c703c51e1257a3, 0x439b669a495c6e09}, Y: Fp{0xaf1cda087ca1c45e, 0x14a370321a48224d, 0x639406cb6b431113, 0x7817c8f03c339c85}},
		{X: Fp{0x37de939e882bd1d5, 0x1a6ab46816879704, 0x563c2ef62d6a422c, 0x416b57df92fa9f62}, Y: Fp{0x45e4cb3318eec503, 0xd06b5a48514ec68f, 0x94d555c2070dcc47, 0x18686760967e732c}},
		{X: Fp{0x77f9f54c60f9a4a0, 0x0825654bd73e0455, 0xa2acf9672f2cefee, 0x02f35ea0cb06a015}, Y: Fp{0x84897096f2fdd10b, 0x4e8a38da275ba903, 0x7803bc4def5b4733, 0x13df3f6277e522b2}},
		{X: Fp{0xfd73fcd8a47d0a28, 0x5ff12be22d41f1de, 0xe2fa5997bf4bcf8a, 0x8ba87a0f05086326}, Y: Fp{0xddede6a035a38e72, 0x35986ea4ef4a44db, 0x2c854d3ab87485ae, 0x9f2cd522791368b0}},
		{X: Fp{0x3189391e31df5ea4, 0xb973eee64cc3e7e1, 0x759462b5a36867b1, 0x96d534e6eab2ffdd}, Y: Fp{0x73ef3d7d74a1af1c, 0x7a69c79b87ad2dac, 0x6e7161d6e09aa4b7, 0x1e19245c9f8cd983}},
		{X: Fp{0x0a5fd8d77ce9a038, 0x428c2700a6bad6e9, 0xf4b7a258680ef61a, 0x66cd45ae677bce40}, Y: Fp{0x46646a419694e9c5, 0x5dfc1bb9a1a86792, 0x4086257a001655f8, 0x354e28422d8b65c9}},
		{X: Fp{0xfb790242c83eade2, 0xc1a8f2e8ae349166, 0xf6b92c47d2692015, 0x152351213c0b4f5b}, Y: Fp{0xcc506f368036bb6c, 0xf22ef79173e37aaa, 0xa99c6837be1e6474, 0x688cb9d916a81793}},
		{X: Fp{0xdcf09ceedbc60029, 0xbdf866e8ffff3712, 0x2302bb9c82d3cd7a, 0x2c9e7caa33a6f045}, Y: Fp{0xb02dcba45a0ab9c3, 0xb59e5f131c0a248a, 0xb114431a1fe3219c, 0x0bb96aa8518f8e76}},
		{X: Fp{0x82ade29b7f0ed91b, 0x99a0c5c131622ae4, 0x672cf327fa4a0d2a, 0x8be0371405f87dc4}, Y: Fp{0xe1bb5d03811be7f9, 0x7a21d72174240165, 0x0b30a6c6e25df852, 0x88d88c355b919810}},
		{X: Fp{0x2e12ea089afaf13f, 0x8c0ace0db4361c56, 0x2db670f0f2728caf, 0x5522c62b71daa0df}, Y: Fp{0x050288a769612170, 0x7bdbbc865ea5d893, 0x54cd8060ce9fb50e, 0x7cf1cf5416be9855}},
		{X: Fp{0xc2290d71647e483a, 0x40f5733d42881fa7, 0xc371ee156163ab34, 0x03670dfd1f0792c9}, Y: Fp{0xafb007e234cf6b0c, 0xf7bcdf6355f03987, 0xd47e5f831f59c0eb, 0x6dbf46158cc66eab}},
		{X: Fp{0x6a3435eac0578302, 0x1c9cd02f69f24f1c, 0xd520cb7b31f78fe8, 0x4d1db114fd8bd9da}, Y: Fp{0x65daca2960699aa3, 0x01f157a0f1a071be, 0xf2188a2521f3d6ea, 0x5eb666069e502d17}},
		{X: Fp{0x3db944f782ebb404, 0x33b1e18f37cbd5ac, 0xb47a3840a8befd4e, 0x8b518ddc2f445e88}, Y: Fp{0x76b0eded46b91501, 0x4fa34808f2ae6359, 0x88a803ef393c4da5, 0x79f4a38a4ccd330e}},
		{X: Fp{0x88b9dc03c1b68090, 0x7496de6135f94fa2, 0x3e35a59673080930, 0x4984c8fdac78fa73}, Y: Fp{0x3a73b6bb2109c960, 0xa650a021efb1bf2d, 0xe753245bfd7f3bb3, 0xb2f526dd1846f193}},
		{X: Fp{0xa2869df856367a7a, 0x7dc3abc0f20cf8dc, 0xc914a772e4c48f64, 0x64476b5e675cfb00}, Y: Fp{0x81991a72a335ab62, 0x8f15fb9b06c84d1f, 0x8ac798d9e60d8eb2, 0x32cde0cd5d25adce}},
		{X: Fp{0xd4e8f7c4ffc5ffe8, 0x1b76ba83141274ce, 0x30098994ba0fd62a, 0x63f03819d29b7d5b}, Y: Fp{0x3cf276fdaa701fd9, 0x9fca99dacfafe787, 0x04fccfee3fc34b3a, 0x65ad5593e680d85b}},
		{X: Fp{0xef3dd884c6a7ae8d, 0xff0f1a3f57d1ee85, 0xb11d2818e39d9499, 0x94a43591fad8c774}, Y: Fp{0xc1b0e18f17f10841, 0xcd6213e2c202623a, 0x7b02903b230329a5, 0x116e267372f48296}},
		{X: Fp{0x0c8919e08793787c, 0xb702391f4a3e6288, 0x5c37f08b24816898, 0x69609790cc0abda6}, Y: Fp{0xca104306c915a94b, 0xc6da5985eea9e5a0, 0x6d7561fcb22462a4, 0xb3e422bb2fded88d}},
		{X: Fp{0xabe332548380b7d4, 0xa34fd3d9993cd2f8, 0x79c0f819f84d7f51, 0x10a6a37aabf90d9f}, Y: Fp{0x689bb5998a1d3f1d, 0x49f74e2ed7412e7a, 0xd85fcbc67d152213, 0x148526c061395783}},
		{X: Fp{0x6d40e71f35c5a56c, 0x97a2e6aeec2d1693, 0x5a7b8fc5dec4cff7, 0x17bc20e9785a4cb3}, Y: Fp{0xd923b1af4edb9de6, 0x3af14cabfa7f2abf, 0x155e22aaa301a60a, 0x17287e81cbe393c9}},
		{X: Fp{0xf75d25bcaa002377, 0xab987b65ef54ac35, 0x565fe903021bb7ff, 0x9134e9379a0119d7}, Y: Fp{0x8d5c07ad1cfb0f98, 0xc167e73bf49362b5, 0x07656ef761a7c8dc, 0x84161b3c1a144ae4}},
		{X: Fp{0xfe050be7f80ee378, 0x7ea15d088427739d, 0x50d54c5391afc591, 0x54fa39acbf74e000}, Y: Fp{0x1461d3e9ba962757, 0x535fb923ac30a142, 0x8936e4900e9f2eae, 0x166e3c97a406bb76}},
		{X: Fp{0x58202306a14c1c50, 0xf4b26782ffc20a1e, 0xaaf14d7c09a6762d, 0x86b64563a0542f3b}, Y: Fp{0xa8d3a584df55add3, 0xd5622653fabc919b, 0xfe1291782aa14b7f, 0xb0ca36aa0492c2ae}},
		{X: Fp{0xfcac0734c0de34b0, 0xf476c1e2237ba641, 0x3bc7cd91942d94c0, 0x4fc639950e9849f0}, Y: Fp{0x69c9b737f0b560b2, 0x26148b25a5d34a19, 0x4704704805548e9f, 0x2e8c71b08b81e452}},
		{X: Fp{0x3c24c83d2951569c, 0x16d7aabb97f1a2ab, 0xf8c8ff4173a808e7, 0x7532de0aff8d45b5}, Y: Fp{0x842cd9e3352c62a0, 0x43f27a80640f5b00, 0x28bd2c44f6415b73, 0x2855d461df7e8d31}},
		{X: Fp{0x9c3b5855ffa9005d, 0x2bcb6c9f0ffa29e3, 0xe91e7e8473f9e563, 0x369e2ff311459e73}, Y: Fp{0x5404801b35bd1852, 0x66d2ae0477fc167f, 0x10215ce00f05f465, 0x2e34dbb8c59c7641}},
		{X: Fp{0xb346860a8533d03a, 0x07d6931013583e5c, 0x7b60dab7f0140999, 0x62659a53f529abf5}, Y: Fp{0x13d2c765d6a3f6f4, 0xdff42a46f200a711, 0x7eb7445e49bf3c9b, 0x7ce1ef02ef613394}},
		{X: Fp{0x1c78a19d16250874, 0xee31ee859822e5a0, 0x0fb456940c6cbb64, 0x3daa7787a1d3c09e}, Y: Fp{0x45d898b9a2e22ba4, 0x08d482a5cde7a73d, 0xe355dbda12051a71, 0x801217843885cc68}},
		{X: Fp{0xb6b70d7da205929e, 0x546254e200dc0b6d, 0x34b700fc0ccbeb19, 0x4d1b33167d3fba36}, Y: Fp{0xb56750ea56ac4dd8, 0x601d23d12db6c6e4, 0xfb63095536514d4c, 0x2395f785de4dcb8b}},
		{X: Fp{0x94ffae0afbf9a1b5, 0x3560a662c913f51a, 0x6feecf44500fd68f, 0x02dc808761a3660c}, Y: Fp{0x78fa801e237c7e16, 0x380375797102d253, 0xdcd9473d52310db9, 0x90e53d36842997f3}},
		{X: Fp{0xd7be5b4855a19751, 0x97af7a078850f0ee, 0xda2459d7ce1c5f2a, 0x68ea0c52fd8ab744}, Y: Fp{0x85cf9b8f55663e3a, 0x831d93bd9dc0f4fd, 0x8ba79d7f8424a50a, 0x59a09a48543abf66}},
		{X: Fp{0x95227df9ce8309e7, 0x2b1c8052da38dfb2, 0xf99dbb849c60b38e, 0x6c9b7e867a3561d6}, Y: Fp{0x3d484442ea02c705, 0x9c9e139f05dc2e55, 0xe2951b3f1ef3bbeb, 0x5e0226c760f1bf5a}},
		{X: Fp{0x76a82cb1a7999d9b, 0x410fbb5749e6b33e, 0x88f84fb9a0f39cbe, 0x2d338d7159318aa0}, Y: Fp{0xeb1fa0984f572811, 0x87b493285d5ea22b, 0xc4409051f3d69bfd, 0x05d9c84e605380f5}},
		{X: Fp{0xdf83cab7fb3ed50c, 0x163f3e16dce9f52e, 0x5eba23f017e65f41, 0x56f4bd6df6b69175}, Y: Fp{0x4a4a0e20a16befcb, 0x33b4658438bce02a, 0xe393942590e7b49e, 0x6bc9332ac99e8619}},
		{X: Fp{0x83ef8c59609ebee3, 0x700737b4a33d28f9, 0x57113c8de9432683, 0x0c8645cd475d1877}, Y: Fp{0xfcb5ed939af7e7f3, 0x5f5c27e4daa57177, 0x0a61304bd4e1584b, 0x3225f43a4cec4693}},
		{X: Fp{0x5bd58ab7c92ce65a, 0x25364e7f92e8c6ee, 0x924688fcfafe8e1d, 0x905665e9f696e2ba}, Y: Fp{0x0321f9fde4a218c8, 0x2e66a676b72848f7, 0x575a95e820d5d665, 0x868c889554457e7c}},
		{X: Fp{0xffdccddda591fd42, 0x7ec04d11dab24924, 0x21fbeca9fd6babb5, 0x10cea806df0a446c}, Y: Fp{0x9e7858a8912047b1, 0x39106add1ff6cfcb, 0xb77f44e25ef89896, 0x40a13b6e85d13600}},
		{X: Fp{0x0b2ce6d28f7b687f, 0x3b4f525bda3237fa, 0x7819086122c60129, 0x042819881d2ffa85}, Y: Fp{0xd8825e782393c456, 0xa9051e5c54bed888, 0xc3bdd35ce4e2d302, 0x5d1efaa1d1d267de}},
		{X: Fp{0x8e8c1bffc8a9ae15, 0x6c58d6b1d6a3b147, 0x18ff7e4a2af4f85e, 0x4ca5fd190f76e762}, Y: Fp{0x4db4c3b189cb0d6c, 0xfe7cec96ac47d6d4, 0x52829c46b13604fe, 0x1ce6b7122b5e42b0}},
		{X: Fp{0xc81edb100fdff252, 0x15d33f406fa9c6e2, 0xf8832fbe312bde5d, 0x84e4f8b5c91406f9}, Y: Fp{0xaede8a8c3fd0c991, 0x0e3f80c8bed20115, 0x4335a803197367f6, 0xa4b2fe62d7c7da4a}},
		{X: Fp{0xaa1d4b2e58e70189, 0x0e2b41c0d505b1be, 0xcd066fae10bb86f9, 0xae846012bbd11c9b}, Y: Fp{0x71d437c8897a14a7, 0xafba1a40e0910296, 0x6953c2f1e813083d, 0x79c86a0bf7f0fd66}},
		{X: Fp{0x5cd4334f0d7e606b, 0x028a7859285784f1, 0xff47aa281cc450f7, 0x428811ab639de346}, Y: Fp{0x8fa14c03f02d72ba, 0xe9c024f37a1afab5, 0x95ade4f7f3d13191, 0x312cd0b0cddc84b4}},
		{X: Fp{0xf45b3d2600774d06, 0x818a38e4e132defb, 0xedd36a44a581bf0e, 0x2b8688264cd38542}, Y: Fp{0x93f6092c993dafd6, 0xa343f4d6c6331588, 0x171d3c178f379de8, 0x116fe9c4ee0ec779}},
		{X: Fp{0xf3abc78efe9d7cab, 0x41cfd3895896879c, 0x49ccb22fe58e2eac, 0x240c55b659712156}, Y: Fp{0x032fe11b9e49cf9b, 0x861ae1004ec96869, 0x19f6da3a594f0139, 0x13b8642602dadc12}},
		{X: Fp{0x48742203fa983414, 0x3ed1e14813a78bb5, 0xed6835982736b249, 0x53e997da558dfc8e}, Y: Fp{0x54592133b6316d96, 0xcd5304cdf2ce24e0, 0xe94345ae73542cc0, 0x91c38ed9fe89be23}},
		{X: Fp{0x94b73a24989bf2a5, 0x575882e03ea8b234, 0x2ac636f6e660c680, 0x999b2a7bf91b4a0f}, Y: Fp{0x1a5915023c07c058, 0xa6f26703c3f37dc0, 0xedcfc1deb49f5345, 0x6220beefe2537b15}},
		{X: Fp{0x5e46d9da0df07418, 0x235bb60cc92b1633, 0x35c89e0e1b2be456, 0x59688bcfe1a506d2}, Y: Fp{0xf7cf3ece04932252, 0xe9060d166b64c96f, 0xead87ed2c23e14ab, 0x2c4384f83af11bb6}},
		{X: Fp{0x60d404160551a015, 0x62e16acaa7322a01, 0x6de08bf464bd3a8e, 0x8fee43a612c92ab6}, Y: Fp{0x7be5d3264f225a46, 0xd81ffb13094f468e, 0x14e1a82106e12ad9, 0xb282f4e05dc36094}},
		{X: Fp{0x511b40c5fff08c18, 0x1e7c067d8f4ab301, 0x908c58e81a3d81dd, 0x312676ebb5cc55f6}, Y: Fp{0x0058f460a35191cc, 0x39e797a41489db6a, 0x91cb75b242d99d55, 0x0210d7ae28a28c5d}},
		{X: Fp{0x71b17b890f43c6f8, 0xe6ec23c5de21c1fc, 0x3137a9d97ad138e0, 0x1dcbb7edcf79b337}, Y: Fp{0x6ef8267249a41769, 0x018321f7d3186529, 0x1a78bf2dd4bc0e55, 0x0efdcbb9dc71b052}},
		{X: Fp{0x6edfa0e5a39893e3, 0x0e7302e11aaccaa9, 0xdab18f9d25f71889, 0x31d0a4d53d5dd165}, Y: Fp{0x394c5569ab94154e, 0xc8514d037e616186, 0x87009b3019918a45, 0x648271792ac34b0e}},
		{X: Fp{0x130c6cea8a2214b6, 0x496537de12204695, 0x076704b3b18070d2, 0xa53c81334b8ebbb8}, Y: Fp{0xb99a9ec608816db3, 0x9fd454d1ecb6a080, 0x6f22001a2d71187b, 0xae6613f589543ca5}},
		{X: Fp{0x4de00bb222503b34, 0x002aacee151adbef, 0x7e5db61c07d40695, 0xa7047388b7cf73e1}, Y: Fp{0xe1b71d1e740f1733, 0x28b102f100b9cfa8, 0x8a43bbbc434414a8, 0x4537fd102377b535}},
		{X: Fp{0xd57217fa90cc13ae, 0x55630ff89f342796, 0x5863af14ee5e7d5b, 0x6d608523bffc4203}, Y: Fp{0x31acba1460c081b7, 0xee24675ce6aa822e, 0x439cb5f46ebdb9f7, 0x73e1a2fbef8d025c}},
	},
	{ // i=8
		{X: Fp{0x904c71715ceca4f3, 0x6d6167aa51348095, 0x62b2d5fc6959af50, 0x14a1b1f6da5949a8}, Y: Fp{0x73ddd45359e65003, 0x58631a8d777ba4e4, 0x4e659527cf280fc3, 0x48bd3d26d16b940c}},
		{X: Fp{0x5a7df4ea6322ae1c, 0x091988076a2b0e0c, 0x8eed1be1eb2be1ac, 0x0f6dbc7ed8985e52}, Y: Fp{0x6623fe7088b827a3, 0xccba7b9f161cf7f9, 0xf149b3b8af4ad92c, 0x182cc8a1fe4dcd9d}},
		{X: Fp{0xd67f10173a1b5827, 0x1d542e20de86c4cb, 0x240ab953d5aca262, 0x38f1a812bea1f0db}, Y: Fp{0x411d5d620dfe602e, 0x82fb0d0af78a0d40, 0x7c54caac7832f7af, 0x06456ec8d7adf7da}},
		{X: Fp{0xb18c9ac9cdbcd291, 0x830749ffebc1345a, 0x124f84a6778ba495, 0x083be9210304f240}, Y: Fp{0x8c4461df7ae8ec63, 0x5a9d0448890480f2, 0xa31b7f5eff9868ef, 0x14c5c4e7842e395d}},
		{X: Fp{0xf1949b8343b3be6e, 0xb55928b7d3aa02cd, 0x83f8b3aa1fbcd83a, 0x79bd6287ac772776}, Y: Fp{0xeb813d6c3364697d, 0x07992f717f0cc707, 0x4c69e486866367cc, 0x971c19d250a2393a}},
		{X: Fp{0x93637a53874d2ddf, 0xaa5a850098682c7e, 0x821238d4a2f3aebb, 0x7c321f45d55b2699}, Y: Fp{0x9ede1f24905b5d26, 0x054a0ee813384dee, 0xb7135a51696b5e65, 0x0fee49b5e3ea6411}},
		{X: Fp{0xfeadb59647666d40, 0x70e819152ddbb0b1, 0xa3eec92bb2d47a57, 0x6ed4e4d694d77160}, Y: Fp{0x63ed8dd1d1b835ea, 0x797ed3d04767a914, 0x3b0a2a293b97006b, 0xb069671f9161071f}},
		{X: Fp{0xb9c1beab2b76a669, 0x4580b35c6020cd01, 0x1292a4cfa19eaf36, 0x9b7db786efa4377a}, Y: Fp{0x6d4d6a86042da8ab, 0x61f1f19d2a2e87dd, 0x34100d31c82ebc58, 0x3123180e646e9e35}},
		{X: Fp{0x7fb0d9840a2e1e2d, 0xb47650ea353ee956, 0x7adc339ff28db9c1, 0x08e3630e7e8962a4}, Y: Fp{0x6096a2a993bd4c83, 0x0dcfad0c04a6e76c, 0x366f015f1bd98a4a, 0x44e1077afc554cf1}},
		{X: Fp{0x46d4106cac4b47ae, 0xcedd456a94921153, 0x5795d13d916c0069, 0x11f369ee17ee2db5}, Y: Fp{0xb0d774b5f6d4dbe4, 0xfdc359433ab40032, 0x5a29ec4f01fc1cf7, 0xada381e328001187}},
		{X: Fp{0x62974f4232b4332d, 0xbac7e9c307a14f4e, 0x33555cf174e5b9e8, 0x7835939de615e42d}, Y: Fp{0xc8d534784d222a3e, 0x5b6929c38d247ef7, 0x439ff44fced22c7a, 0x2ee680f57bdf4a5f}},
		{X: Fp{0x3d8b450092a5acbd, 0xb558d9f8960dd7b3, 0xd08257911d0d1ee9, 0x3294cfbd581968e2}, Y: Fp{0x57782c4d1da2d3f9, 0x13f14004e64c67f0, 0xea300dcd6637e707, 0x260568b33a61b4e3}},
		{X: Fp{0xdec4b197373ec104, 0xa2601681255dcd0a, 0x56608d6e67381d56, 0x1e383b4a68a9cfa5}, Y: Fp{0x5924bc233118e934, 0x2534c74a60c3b987, 0x4e43101b0a0f8cde, 0xb3dd6104521819e9}},
		{X: Fp{0x0b733ed853e37864, 0xe2956f1d88b57bf3, 0x53f5da004e1148ea, 0x4890430b72c1ba38}, Y: Fp{0x8d7f5173c4d86f24, 0x38bdc584576b143e, 0x6e42617eb78d605d, 0x08a7b3fd2de6c10c}},
		{X: Fp{0xb49dfeb0fd2193a3, 0x0b9ece2b1081ccd3, 0x332045cfed6e01d3, 0x5157153dd0c6fed9}, Y: Fp{0xf2483a06f5c64b74, 0x9c04a97e25a5de95, 0x9a6475e77101d66e, 0x729b22593b83c8a7}},
		{X: Fp{0x972ba64fe72386f4, 0x6bfec07108fb030c, 0x0bcf859cceddd929, 0x0f7ef8c1b863940e}, Y: Fp{0x8a8ff57689bd08be, 0xe04cc458d3f391f4, 0xa51db105020acf45, 0x8cd516c2a94190d9}},
		{X: Fp{0x141ce5a9477f3a29, 0x1fe5632013477449, 0x1c6414d98a45d204, 0x4b3d3f0c45168060}, Y: Fp{0x1de453163de397ad, 0x0cb536442ca7e42c, 0x7c46be39371b6246, 0x7faec13ff55001b4}},
		{X: Fp{0xa5f8eaca9a454363, 0xc8a00902c59cdc81, 0x2c14b3d40a7d3b11, 0xace7401e89c702cd}, Y: Fp{0xad522b1ad32579d0, 0x9da895b32a503e1b, 0x4ea20f5e112965d1, 0x6e50af9dbba99295}},
		{X: Fp{0x89687aaecdeedb96, 0xe934261995cdc689, 0x4ce174ccb1fee1a7, 0x9e7148fcef863372}, Y: Fp{0x5e394ae5e4028d98, 0x9d97b98ff32bb7ad, 0x92dcae51f329c3bb, 0x8159a5b4ef18feb3}},
		{X: Fp{0xb7800ec09461008a, 0xa8ca80e6b6451921, 0x93f2cad852c1e7ac, 0x5b5f805da2e74753}, Y: Fp{0x3c81996d2abb8a01, 0x773cefcd9bd10187, 0x17c66e9f26dfc68a, 0x14acc77c9f8b92e2}},
		{X: Fp{0xbc5cdf2a6cc70c8b, 0xccd25f56d2e38199, 0xa14edbce87aeb9a1, 0x644fd754ba0b45dd}, Y: Fp{0x09f1f31539ba4770, 0x50cd61bec4c6f90d, 0x18936bc2c77649f0, 0x32545423e42de2d6}},
		{X: Fp{0x9e5654e50b4cad94, 0x74b21a33f81ad3f2, 0xb29cec4a626345c3, 0x5311c2d5299c9dbc}, Y: Fp{0x4738d78052d10f01, 0xcfa926ed6900c69c, 0x04a634a321fd543d, 0x2b25eaaa2e6660aa}},
		{X: Fp{0x390755228ca1b938, 0xc8d4ed7ac52b3ae0, 0x23ba34a187630d93, 0x8d8ad5e84008cb07}, Y: Fp{0x975d675960a4cfe1, 0x4d8ebd3450e728b7, 0xe1b3ad433ce82996, 0x9fa80bc4ceb12235}},
		{X: Fp{0x0f8b1fcdd3ce465f, 0x6f9eb4fcb921930e, 0x9ef8bca0bf69ee08, 0xb08e3f1cee4e9cd1}, Y: Fp{0xae2fe5939b002c43, 0x284332183524fa9e, 0x3486148c18a90180, 0xa0e69d3f8c723658}},
		{X: Fp{0x38fd37a304dd49c3, 0x87434e43ea14283f, 0x891cce1fa5253c7f, 0x30d999b142169af1}, Y: Fp{0x4ac499185e35e143, 0x4eb94d947f253499, 0xf9daa0d191fcc157, 0x901d5c0f55206b05}},
		{X: Fp{0x957814fb52da1cda, 0x425b1edfdca32db6, 0xb817ce71b9eb4f88, 0x0630d3d18e14eeff}, Y: Fp{0xc2cdca78365b3a6c, 0xce51f37beb36eb02, 0x0e74fdb94642edc2, 0x499ce6921e7edca6}},
		{X: Fp{0x4687cbbc047969d6, 0xb6af814a0e33a061, 0x307a84bba2d2675f, 0x77b540f36f0ccbfa}, Y: Fp{0x1d036001fc06a735, 0xe55c1e4f16d2b783, 0x5ef618e90970d7ea, 0x410fe86cde4d8239}},
		{X: Fp{0xe361bfb82c5b9994, 0x9db7b3a62ed4b7ea, 0xc2dae6d728fed012, 0x656f06c3cc3675e3}, Y: Fp{0x5d778715af4cb3db, 0x22aed1f2accf2c10, 0xb6a86b70d8a4236a, 0x60bfd26a8ded6aed}},
		{X: Fp{0x8ae21e17f3126c96, 0xb949b64c9705f912, 0x8ca53f55176d0047, 0x6cdace8871ae4d1b}, Y: Fp{0x371b3951f8a766b9, 0xf36b2c899858acf8, 0xba655a46d8769c57, 0x05f04c80eb837cc8}},
		{X: Fp{0xfa5c86ce8530d586, 0xbc109bea31065457, 0xf2d46026230ecd93, 0xa3cc22ff1a244754}, Y: Fp{0xb716f3bfc40f0b3d, 0xb9f56561b6ebe5ca, 0x91234bc190ce056d, 0x6a04a9102da17623}},
		{X: Fp{0xc75201ea6295df15, 0x04e129049cd846bf, 0x89a563c109ec1539, 0x892e0822648174ec}, Y: Fp{0x0bc1aee3c7259ef5, 0xfca2bbf1b8599155, 0xfcff06aa5c55e94c, 0x7b32a398d7855138}},
		{X: Fp{0x0becc5da99bad9cd, 0x852da1d6f55eb879, 0x3b1a919758c22d4a, 0x3bf7ff86135c46f3}, Y: Fp{0xb3eb9758ca6d9ada, 0xd464bcb480656c64, 0x0565d8847b25a8d0, 0x773a5843043f1e59}},
		{X: Fp{0x4aed559b64ffe044, 0x9d79e06d5645f842, 0xdb72214e830429e2, 0x2442ecf359ac7f23}, Y: Fp{0x1b530e1f23e11d04, 0xd1d85925ac895478, 0x08d6ebfe5d7b439b, 0x3d5ebaa99254185d}},
		{X: Fp{0x32145745ba696cad, 0x1f79e448a37a9bd2, 0xf54bb2a9db8fb900, 0x7096f2f4a3d5029d}, Y: Fp{0xfa7c9061dda099ef, 0x2a767acd9b4f25a7, 0x41c1ce7cbfa7e4d5, 0x754709aa2ce954b1}},
		{X: Fp{0xba0cc22792c1c7a1, 0x4697a9f8dffb4f7b, 0x1aa7d14eebcf7dcd, 0x06bad634f4cc4f19}, Y: Fp{0x14b389ac1218fa1a, 0xa0a714922a7f95be, 0x2f6e8595758ef1a9, 0x83abb08387d75672}},
		{X: Fp{0x6098117fe9dd4b17, 0x252baaee646a2b6e, 0xe97336da75dc7f10, 0x65175c47a766a55b}, Y: Fp{0xe3526118a8785afb, 0x46b3a12c75dcbc61, 0xa6ce60938a127c3d, 0x8dcbf09ec7239d09}},
		{X: Fp{0x67d14e91f676c48b, 0xa0e75471946636b2, 0xd7b4251687442af0, 0x4cb59716459ba32f}, Y: Fp{0xd4b6dc91d2a8e50d, 0x33efaaf31e79d882, 0x1afe33fc06193332, 0x7513d84aaed74c98}},
		{X: Fp{0x59f63c163076d8f5, 0x58f81d19af401922, 0x345dc443216335fc, 0x3e0d6b4d158f4ddd}, Y: Fp{0xa93d5c0c136eb533, 0xae7d0250c8df6d21, 0x6bcc33a2c1fc16ea, 0x3931fed54c3ca8e9}},
		{X: Fp{0x12bf827169f6abbf, 0x0340d70f1675987a, 0x6dd4d367b3524fde, 0x049d853f878833f8}, Y: Fp{0xf820d567422d53f1, 0x7affab4b659c8b4a, 0xa73420613ff54127, 0x261887e88701c046}},
		{X: Fp{0x3a764afb53663af2, 0x12062a8edf93beff, 0xbb4dca9ffbe6aa36, 0x94cfee9d5c98a332}, Y: Fp{0xcbd5396d99a0eb42, 0x40a43a0ccda614e5, 0x8bf451965c6a7977, 0x338d9316428ff802}},
		{X: Fp{0x5c6999f97ee41d34, 0x49777084d73b2140, 0x5594532e8c411dd4, 0x614c78b90b7bc1e5}, Y: Fp{0xd375bf1516299b1e, 0x334ef8948b461d52, 0xafe05f675ed66bb2, 0x5cbbe423611ce0bb}},
		{X: Fp{0x64ec3eb417dd93e4, 0x680fa7cd432e3e3c, 0xbf6cc01acc88a294, 0x3a42047018c267b3}, Y: Fp{0xa672be6b714bb5c5, 0xcb32c85e76a1a3bf, 0xe3fdb42d28e3725d, 0x783367678b88b05e}},
		{X: Fp{0xb39b9b20e8491039, 0x63eb518d080d9e62, 0x906d01b5f6c851fb, 0x88a40885c2e588ca}, Y: Fp{0xffc5ea39dd287ec9, 0xea1f96d49b81755b, 0x41e9960217491405, 0x2434592a2c8530c2}},
		{X: Fp{0x56db0da33dc3d7ee, 0xb8eec69d1ef12d2f, 0x65ac475b091ecddd, 0x1569f84e767c8b39}, Y: Fp{0xdd506d1a87409825, 0x026eb63385142233, 0x731e9e7cb4406097, 0x3a89ad0606a65f54}},
		{X: Fp{0x5a70dba82466a65c, 0x46116a06c52c6f3e, 0xcfb04cbbe6ac3261, 0x2b258084bd0b6919}, Y: Fp{0xa9df127bd891f7b9, 0xa01e2d1ff4f6d17f, 0xa1314c2da88c0714, 0x5dfb286ba69fb758}},
		{X: Fp{0xe018e0a26514acdf, 0x22932c084b2705ac, 0x82cd240875131c72, 0xaff23d25f12a048f}, Y: Fp{0xfe0d431e812d5565, 0xf1a184bcb2d15eb6, 0xc4c65aa12bd2f19c, 0x36e90a1110e69021}},
		{X: Fp{0x34a24282ee657437, 0xf2b254918578396d, 0x8dc72fdc58fedfc8, 0x7f675ff0d8e6f725}, Y: Fp{0xf1cc9098fe35b3e9, 0x1d81898c824d8db5, 0x94efb083e221ddca, 0x38a1eb18814b46f1}},
		{X: Fp{0x7cf6fc9f342cbc06, 0x1a8aa2708518e970, 0xd2c3d5fc91eefb81, 0x47ecb22a2a7377a8}, Y: Fp{0x0bee879ce9f408b1, 0x30ca16a0c773bf3f, 0x5ebd029747a5da12, 0x68189a749d731b7c}},
		{X: Fp{0x4485841173073e96, 0x6356cab70a9d8218, 0xfd70ced866822adb, 0x307c102be8c25e5b}, Y: Fp{0x656f9432f5c2aa49, 0x983e84886c2d6ba0, 0x921581ab620df22b, 0x9e7e14bc7859634e}},
		{X: Fp{0x494334ae50ccd0fd, 0x91ae0c00304b781c, 0x354485725a5fd3cd, 0x815140b79f55a2c3}, Y: Fp{0x2817dd6a9c0b1314, 0xc097d7648bbb1393, 0xf271b28233ae4062, 0x67650b0273a5dc62}},
		{X: Fp{0xd37af19c8a183953, 0x1730c44a0bb84528, 0x44b13e0331882837, 0x16ce737a7dccd90f}, Y: Fp{0x4e470b260ee83833, 0xa2690c3e8bc7ca73, 0x02067e677f5d0c88, 0x258c7de84852d627}},
		{X: Fp{0x36c33441c466c03a, 0x150cede587ee6f6c, 0x49d19e33d6325538, 0x37fe62029c8a03f5}, Y: Fp{0x0c7228b687f0d5c9, 0x7ecea6286cd7a46b, 0xa19d0ace2b87c02b, 0xaf506f00784874da}},
		{X: Fp{0xb9b87a068431f1e3, 0xde71bbe10483091a, 0x0069925469373f1a, 0x9f6ec89adf34bd94}, Y: Fp{0xa9540c2b9bb76219, 0xc66dd966d44cf2d8, 0x47d6c07aeae42220, 0x6d1c25a44d07e43c}},
		{X: Fp{0x166ca193effff29d, 0x603d29e0f54abdd0, 0xc1a6dd8952cc9af2, 0x99593cddec91b5c7}, Y: Fp{0x222a8d476d8ca869, 0xaf1b0cd1bf05a1a7, 0x4b9186a255ddd876, 0xa8bd001b9fe504da}},
		{X: Fp{0x66c925dba5d4453f, 0x5a912f0046f865a5, 0xb9b9ace02bb97d90, 0x8c53cbee2d918d8a}, Y: Fp{0x6065dd665e0a8646, 0x2c70b7a16ea56d0c, 0x3e46170d9aac5bad, 0x7b773c0accca20c3}},
		{X: Fp{0x28281d8b5bdcb9ec, 0x2fb9e59e17c3dd7a, 0xf380967dc265fff4, 0xa56c31fc47b72508}, Y: Fp{0x59a025a691ba510a, 0x2953ce9917c233e0, 0x241961e05cd6e7b7, 0x6ac89ebdd546ae46}},
		{X: Fp{0xdeb1878117b44a5c, 0x9dc8698ca7bdcc02, 0x00e98b680c55dd47, 0x2a6c9fe30e3e2aea}, Y: Fp{0xbcef38df88513a90, 0x3d18e0c9b074f906, 0xded70fe50de4a19b, 0x398811688bcc9cfc}},
		{X: Fp{0xfebb70aebef7a5f2, 0xbe4c57718ea55b59, 0x6037f0e5f4743eb3, 0x2cb193b651856e46}, Y: Fp{0x19604370f2195349, 0x6692e69594a28a67, 0xc58afe2e560d3d4c, 0x02c080d26021fee2}},
		{X: Fp{0x619193724721f09c, 0x6c82ed1b72127c4e, 0xda3e02026bdefb34, 0x99ec7f9f3f61638a}, Y: Fp{0xcaaeca045b619e0e, 0x49510e2a1e1f1f5a, 0x530e06c31c1fb240, 0x1cdb27877c4ebf42}},
		{X: Fp{0xa18027154085a51b, 0x9d97354691e08d9f, 0x59406e8e584cac13, 0x708a427e06b10247}, Y: Fp{0xb3049bbcc6e536e3, 0xd2c8f77a80b9c512, 0xfce2c7109f7c7ea8, 0x70f87fb92facb58b}},
		{X: Fp{0x7ccdc017ad602a9c, 0xbb6ee62b33abfcee, 0x50dd41f3161afef5, 0xa7bd7d4666b54581}, Y: Fp{0x0cd860f76174222e, 0x44e53646ad6f5c4c, 0x57bd8a18ae17234c, 0x96602ce64d9e40c4}},
		{X: Fp{0x8aff1bedea214f1e, 0xdd766b3d3aa0ab67, 0xc10ccc3aecdb836c, 0x19b15cf3cadc6fc3}, Y: Fp{0x274020487209d22a, 0x256a8c334f15a2ae, 0x6a5752943594f721, 0x08869d74c1b20924}},
		{X: Fp{0x91f6c9ccd65cea18, 0xefff93031f6c17a4, 0xb2dfc17b720eaded, 0x76fed393918190a9}, Y: Fp{0xf88fbbbcac01f2c8, 0xc604d91908a0b12d, 0x0d36bf8763b19b64, 0xb0c4dfc5030b0a70}},
		{X: Fp{0x6026a71c736689e9, 0x0d2ad1bc2c461304, 0x4e691022cdad009a, 0xac030b4536c1cdc9}, Y: Fp{0x942d789e510ef23e, 0xa56e8d75663a44ce, 0x11fb9e7c37ee3c44, 0x1fc5f5af7394410b}},
	},
	{ // i=9
		{X: Fp{0x8c45de775cf3cd85, 0xc034340d751baba6, 0xef72625444d41016, 0x30ec219b8400cf1f}, Y: Fp{0x5970e4dfa5d27cf6, 0xee45f195c0b8eecd, 0xdcc218c2a53a90ff, 0x82ea06f55c709faa}},
		{X: Fp{0xba28d1e3d5048a4a, 0x304272c35402c713, 0x69e99637e85352dc, 0x8700ed2483b0b77b}, Y: Fp{0x969534adc499393c, 0x5e8df13a66ad38f0, 0x8f0df437dbc29dcb, 0xa08db36b5f08d049}},
		{X: Fp{0x7ec83c2b2550b40a, 0x3aed9fbea2095c22, 0xe65416f2de3f319e, 0xaace6cae053351a4}, Y: Fp{0x32e3ff8b04b1858f, 0xb2f41011ca63d42a, 0xba5214e42501216f, 0x9a75a9eb63212054}},
		{X: Fp{0x435fe73afc7aed0a, 0xe82d34e1732ce960, 0x2b0712f71abed6ab, 0xaddda9a6a87ca400}, Y: Fp{0x0bb7d37cde4dcbfd, 0x260692395cc025a2, 0xf0c9f825462b1ddc, 0xb2e72d62ccf126b4}},
		{X: Fp{0x8eaaa0686d915569, 0x2cf03601e8fa3d66, 0xb94da61f31a1bfab, 0x46bd2153cecf549a}, Y: Fp{0xbbd073ca946058ec, 0x936d000c95f00c36, 0x2b6b571db6a914a3, 0x237cf4e4aeffeb5e}},
		{X: Fp{0x1150708486495a6e, 0x153da31dca38daa0, 0x7d055f20def68f7c, 0x162d7845f583def5}, Y: Fp{0xb98fb9e7d2e7e284, 0xcdfd65079e44a0c1, 0xd826edcb7d566df1, 0x68f5098dedfcf8a3}},
		{X: Fp{0xbfadb8d51d0cac53, 0x4106ddd7071ea1a2, 0x1fa56c3c731db70c, 0x3ac2da881c3e6be4}, Y: Fp{0x2344d194ea01ba5a, 0x2f9a8b23843e3dc4, 0xb740d33e6aacd217, 0x18b3aea03af941fc}},
		{X: Fp{0x0268818677d4dfc5, 0xf775b4c8b5d60fe9, 0xb2b851db681e4b77, 0x3302b1e278a0db24}, Y: Fp{0x8b3a06e2c7f9b877, 0x362d9839b2a32609, 0xbec2d2253c2a4ef9, 0xb30fdd5df8a752fa}},
		{X: Fp{0x7541cd64494ba897, 0x472f9a0a155968e8, 0x021f96cc1c8265c2, 0x48d85ede18390f0f}, Y: Fp{0x2d106b0c10436f3f, 0xc7eefe11a8bd325f, 0x798b669228134469, 0xa81dc1d43ed747aa}},
		{X: Fp{0x038c62f3baeafc6e, 0x971a0874688d1794, 0x82b3d992f7632c4d, 0x9377bace3bb0bcc4}, Y: Fp{0x59ef25cd33ba3e14, 0x9797a7ac179c9389, 0xd88c84d090bb8d01, 0x9c18d2e8eea08447}},
		{X: Fp{0x2c87e2d341e59e7c, 0x9e490c9ad3e964ba, 0x527a5b35753d1836, 0x24f1a7decc468ccf}, Y: Fp{0x293e7b00296d4b3b, 0x6c12549bd03b924c, 0x586416d597981513, 0x76376bdce38e5759}},
		{X: Fp{0x9baf19748f6da33e, 0xa2c23e510f714411, 0xf475f95b5db0e9d9, 0x68e4697ff7ef1d88}, Y: Fp{0x04aa5a170b14b2d5, 0x45f5ccd1cb36f644, 0x537791018fdd1fb6, 0x552dee4c31aa56d5}},
		{X: Fp{0xcfdca851b47fd775, 0x29a2f30cbc3b1249, 0x0c749d8325c1ab44, 0x69cd3be8851731c6}, Y: Fp{0xd047e9102b5f114f, 0x8dddf246cae1ec79, 0xfb6187bf2f52217b, 0x5daf99af903941e4}},
		{X: Fp{0xe4b923e1794bda22, 0xd9a19c6df581d74b, 0x4ee9ba7112f856d1, 0x62d4f7921edd34a4}, Y: Fp{0x4d0660a6b190a304, 0xe88e41d63e3b464a, 0x6de2636f3b31b14b, 0xb219fbde679db5f9}},
		{X: Fp{0x9013a15cde4d18d3, 0x9c110699a40dc3d9, 0xd0b8743c5d569a7b, 0xa349c55e4a253742}, Y: Fp{0xee4e30cb9ca1a0f7, 0x81cdf1c3785d9934, 0xa5011418deef2ecf, 0x04e5284a05567532}},
		{X: Fp{0xea99eaa866c276cf, 0x58c6b409a762e379, 0x5002ad19798566d1, 0x02c226311619e17e}, Y: Fp{0x627fced431558018, 0x064dbc18e9fe38d7, 0x61c49cee8f712932, 0x8dceaab7b13e50e5}},
		{X: Fp{0x67c919ea5c8c334d, 0x6f0feeefdf38fa18, 0x0d3ed71d33a3385b, 0x8cb0ccdb7d29a67c}, Y: Fp{0x3175d4ddfd2f2517, 0x8ba7e912dd1a7d86, 0xd062f9778a3f314f, 0x60456e30c4fdbdf3}},
		{X: Fp{0xf455d294cd4e858d, 0x2a824953ff0db04f, 0xee545d3fd40007b1, 0x18f9763e2e96638a}, Y: Fp{0x2b22ba17e9a5ef85, 0xb5f20e857529b05b, 0x3ede5fcbb6c30f9b, 0x0a26e6fdf92261aa}},
		{X: Fp{0xa0e562b9ac743763, 0x4c7f7ebafbd4614a, 0x00ef5813c87bbcc1, 0x1ba36512ce60b014}, Y: Fp{0x27d0bcf63ba5482f, 0x362d3ea34f2a75aa, 0x42f96b86f36b365f, 0x8a78ba9e73b63b0a}},
		{X: Fp{0xba8a78ca817fedba, 0xdb988df066b1d44f, 0x0fe4e66997f08c61, 0x9cc685e66a49a6bc}, Y: Fp{0xb6f2b4dda823cdb0, 0x127e97d76aa34d9c, 0x502e16d6eae0f7ac, 0x6c7c29014927ef18}},
		{X: Fp{0xb40592fba6158bb2, 0x78d5070f04020cc4, 0x615e43a2912709c0, 0x253d54ad2d7f3cce}, Y: Fp{0x0c332738daa425f8, 0x6531cd7491e14fde, 0x99412b51b0f8ff45, 0xa114da130e188f32}},
		{X: Fp{0x85bc9f2009746852, 0xea15d4699d9d69e5, 0xe37ebdedda3cdafb, 0x1005d2a5356819b3}, Y: Fp{0x50cf1972a7472a05, 0xd1f502f577604d4f, 0x46a3330b440c0dec, 0xa3359f3dc81ab164}},
		{X: Fp{0x1662f6d7ba9268cb, 0xa8b0a45075512a48, 0x88abf74065624007, 0x9a42df7a3e2b73a6}, Y: Fp{0x6d32aa13f5e3b278, 0x7b1946a054a2748c, 0xbb557caddb1cb1d7, 0x0c8656376aa36bff}},
		{X: Fp{0x4dea8736e88a6779, 0xdc32f2488f0bce9c, 0x4cd7127d068de86f, 0x8f801ad0b2d04d58}, Y: Fp{0x49e79ef335d36dd2, 0x3892601192668c6b, 0x50a2c01f7c681dd2, 0x8f74ad0f5f72501f}},
		{X: Fp{0x0906abd7ec2633bd, 0x68e83c96534ad733, 0xa8fa28cbc09e78a6, 0x3865e6ffadcad813}, Y: Fp{0x599d28bef9b78583, 0xd63fff00e9cc3559, 0x83fb5e932e818e82, 0x5612e68ee81d4a1a}},
		{X: Fp{0x597fec8aa6fc4f16, 0xe50873fbdd3934be, 0xf5c75fc65f6586aa, 0x25192c0ea8009142}, Y: Fp{0x8d5508e372b68bac, 0xeede7ce8d15b8885, 0x4c9df59c9a145b99, 0x8ea27766c05df0b7}},
		{X: Fp{0x392d2692123dbdad, 0x433ffafb75b7313b, 0xa20dd0b9901a7c14, 0x08f4c985363e63ee}, Y: Fp{0xc038a2933f3ba2d9, 0xbee7c301ea783296, 0x17dade4faca3c2ef, 0xaa0762ada43e2c2a}},
		{X: Fp{0x56dde3806a6ad2b6, 0xda98f6f5e704a592, 0x2d142c9f30046199, 0x7a4c2f9b271a5bb4}, Y: Fp{0x91c8933d7d4ccf65, 0x1482fdba80e6c401, 0x287fb2ed49134765, 0x22be353dd4ffdeb3}},
		{X: Fp{0xfa4311fe9017a55e, 0xa22099c2441aa52d, 0x1c5f5262c82fda27, 0x3cdc717bf3b66342}, Y: Fp{0x3d69b1011f31e34f, 0x4482a48a4ef6c473, 0x7b9747299d8c9ebf, 0x1c4bdc3a34ba31e3}},
		{X: Fp{0xa7167c70cf9eb9be, 0xec9d52a22a13a92c, 0x22f4e8e5ada4465f, 0x33d50cb02bd6f373}, Y: Fp{0x682eccfab637a539, 0xec530bc7e21d1eb7, 0x947c9443948c5dc1, 0x3b1cda24cb63891f}},
		{X: Fp{0xf1010aa53fcd520e, 0x7a45a02b365ad754, 0xc9e7d621681ae5f9, 0x7c05cee746b58cdd}, Y: Fp{0x080419113f40f8e4, 0x89439b29d044a19c, 0x193bc17d1cb566bd, 0x15b084bf116b9e57}},
		{X: Fp{0x7f9519301bbbe885, 0x9eb209575b70c7c1, 0xf16b55ac6e354a99, 0x2a7dbf131b0eac2b}, Y: Fp{0x3ece3602777db1aa, 0x0c0014856b5b7818, 0x217629f74cb0000d, 0xb4c438eb481b9dd5}},
		{X: Fp{0x3787b166f53abd9f, 0x721befbfb5a12e9c, 0x8e3d789d15cbe779, 0x7b766157af9d1983}, Y: Fp{0x48908b9d2b25a876, 0x75686eb39476b6fa, 0xcbbd39378aac65b6, 0x6b42e219d3b41971}},
		{X: Fp{0x7d08b05313dd7fe3, 0x236e787adcf224c2, 0x18422d54c365bf76, 0x46ccd5da43d04c40}, Y: Fp{0x1055376af6fa66bb, 0x100f6aa87d16caa6, 0x1adfd69a2634ead2, 0x08ba86e364d1c302}},
		{X: Fp{0x13d7715e2ce7a7c5, 0x74270811393c565c, 0x2c9fb9be6ff15ba8, 0x2e5ad885a7a2be49}, Y: Fp{0xb34c47445d0c4a93, 0xef3b2b75c5f299f7, 0xce998cbc7724115c, 0xae3f90393770ea1e}},
		{X: Fp{0xbd73f0ffcc41d9cd, 0xd9e3f8ba35b5f998, 0x71885e724e6bf67b, 0x1fe1af464017c92d}, Y: Fp{0x4e707c64c75214f0, 0x9c5e7c12bc5d6892, 0x04f4f0d24a8c3d98, 0x56e513822cfaf3e5}},
		{X: Fp{0xda429e926355f346, 0x6fefa9c91dc5f83d, 0x3d9d50941b701e99, 0x168c930cafeb1106}, Y: Fp{0x345cb418b2aa2d21, 0x75b8e2cd592e13f0, 0x453b4526990738eb, 0x0055c7e3d65d0a9f}},
		{X: Fp{0x0602fa6a5bb5d351, 0x1fc68f029a18d762, 0x0169ca3828cdeb21, 0x0dbfe0f5a30c416c}, Y: Fp{0x15d05ff9905c9500, 0x78c038805919d9c3, 0x4f7cbadd98ffdb1f, 0x35cd9892bddd75a6}},
		{X: Fp{0x0d5e47e58b6d6209, 0x76ec34cfbd0bca53, 0xb79d0dd2937a10f6, 0xae3504a3410ed984}, Y: Fp{0xd07c2cd522e06774, 0x8d827b9c75f8800c, 0x2d242c7d4d700fd7, 0x343b545c50d95d10}},
		{X: Fp{0xac887702d77b5dd7, 0x11bc27b00b2118ee, 0x2675658032d70a48, 0x654a148f7ff967a1}, Y: Fp{0x94707435bdc4287b, 0x526c3b84c2845ab4, 0x7f72ed8add08aff2, 0x63be737554a41153}},
		{X: Fp{0x60ee093f02eaa07f, 0xeec61c41838d6520, 0x5cd2df3deef061c9, 0x501f2c0625489771}, Y: Fp{0xc65f064dcd5cc69e, 0x88e6b275601a1b02, 0x4c1746781e00d880, 0x096a5a9d934c692e}},
		{X: Fp{0xb22c4498b6a9ad13, 0xbc3c9723b87686f7, 0x1d367b2ec1409224, 0x78fdc68b2b724d21}, Y: Fp{0xaff66262c814eb25, 0x2f9362e4e6b89f8c, 0x2c0544ea871f105a, 0x49143b8a179487a5}},
		{X: Fp{0x5cb6306d0c2e75ea, 0x9415b4c0e8345426, 0x510312ad1ea49314, 0x0c7c0bcdd115420b}, Y: Fp{0x4cd1c4fcde3720c4, 0x1ec48ecfb2b8632a, 0xaa61312cfc80d22a, 0x40f43649aefaaee2}},
		{X: Fp{0xc0d69e5f489b1de2, 0xd46f74b53ac7927b, 0xac7647d36f678098, 0x69656690ad2447f3}, Y: Fp{0x1b940c18d941981f, 0x673a9883fcafb552, 0x82757e78666a52ba, 0xab8fb8faeb652d71}},
		{X: Fp{0x0fdda5c4fb0078bf, 0xde3b0b8ed52050db, 0x9accdf7c3cd239b6, 0x3c21da924f1179e3}, Y: Fp{0x814969e835016e10, 0xc014fbd881b53dbe, 0x1a740c00f5396d89, 0x9e79fb75bb6ad8d7}},
		{X: Fp{0xfe19e99ea82b035f, 0x194ee0a14b9aa051, 0x3cc724b86961595c, 0x25858688d954a046}, Y: Fp{0x2c3160e4f0e55531, 0xe81f7e34d321b7e4, 0x1d594bc2da924e23, 0x8f69948987587fd0}},
		{X: Fp{0x5ee9dcf8e28def80, 0xe97190e2d6d12f2b, 0x5238e9b401d96b76, 0x1a14033640150636}, Y: Fp{0x65f50238389aa6f6, 0x44d0028b782ef7bd, 0xd7f501d16de70a9c, 0x3a99f66045290827}},
		{X: Fp{0x41f741045e807574, 0x96637de2d76e9759, 0x6809bde8b46e6ca6, 0x3eb9dd04f018644a}, Y: Fp{0x35d8c7159af5c3d2, 0x803a8ede36dbd281, 0xcb2ef03f3bd8dcd7, 0x009a6c403853c1b8}},
		{X: Fp{0xe882d2d7b9330439, 0xafb41a279ca21337, 0xe9e5690ff08adbb1, 0xb21bee66721587be}, Y: Fp{0x0439b97f1b907e41, 0x12586587ae68c7ce, 0x589d1adeb2a0f53c, 0x5e432fb20321ef8f}},
		{X: Fp{0xfdbc0bbf87233ef3, 0x75aa1d1e71348fb3, 0x2fda0733e585ee55, 0x0da2787bfd59199b}, Y: Fp{0xaaeef30052c47e91, 0xf1107a8fc78d4c14, 0x670c62ae2a106a82, 0x41c32936f250079c}},
		{X: Fp{0xb4b5bf176c619f3c, 0x00d4c5c708765b2e, 0x331ce50c24246204, 0x5a0155c37c11fe90}, Y: Fp{0x02fefaa033228ede, 0xfecbf4283b453d70, 0xa8328b5f6d570f15, 0x4fc29101636588ba}},
		{X: Fp{0x1b6f205a60073dfe, 0xa3133169165541e0, 0xee7514a077715624, 0x64c4b68318ee568d}, Y: Fp{0xc9e2341df85df1d6, 0xe684d8fae3570906, 0x5396993b59e8989a, 0xb0d2166a9c7834af}},
		{X: Fp{0xc8c9a9762ea13a25, 0x51324777aa44a9f5, 0x0749597f78bde6b8, 0x4a8057d9d3d69cb5}, Y: Fp{0x13fa6a092b276067, 0x0ca670826f6bc618, 0x24d2cb20e2ab6cae, 0x6179cee02b3a0449}},
		{X: Fp{0x19f60de3f6ad87a7, 0x82488a92c1c37d01, 0x29373167a374fab5, 0x1eabeafa9f721905}, Y: Fp{0x9bb02461657c5bcf, 0x06bc6130951747ac, 0x81493651bc3b40e1, 0x46282c936f03cab2}},
		{X: Fp{0xc1acb33167cfedd7, 0x0059ed3adfc12638, 0x256192cacc69e83f, 0xa2fa2cbb8cad72f1}, Y: Fp{0x715dabd324e21c60, 0x81c6695f43b1baf8, 0xcc20ea50992636f8, 0x8f93b366416fea23}},
		{X: Fp{0xd9295ffcf6c50994, 0xfa3268c82791b99c, 0xa9b77dd681ca59d0, 0x6df5f52b1101d4fd}, Y: Fp{0xce84687655c20337, 0xf93f54e785b9deb7, 0xcef2b675e0835084, 0xa74e35ad9e6057b8}},
		{X: Fp{0xf356efa305299ad2, 0xc902a89b52dfd2ee, 0xd868008adaeaa91c, 0xa46a2851d10b75c4}, Y: Fp{0x942d7dfc58752e1a, 0x240703714f0b5de5, 0x1f0f568c1f6be161, 0x774e400b81153b10}},
		{X: Fp{0x8cf8b603cb4538c9, 0x1b8806bf510986e8, 0xf627e0f40c822e94, 0x81329e4a4022bdb8}, Y: Fp{0x67a21e4ea3d2d629, 0xac9e91ba3d006821, 0x326966da6c0f3f0a, 0x1a3ad9016a8e57a4}},
		{X: Fp{0x16ed9ea3f5c32255, 0xa68742a1b4de22c8, 0x232cddc4066f83d2, 0x76c563b57da12b5a}, Y: Fp{0xb947928858b99909, 0x5c759a2479b54b2c, 0x1aa73be296186bc4, 0x228990c306639976}},
		{X: Fp{0x7cba03dbc5175605, 0x0829f63663d5e8fb, 0x6c9870b68bd31c31, 0x8d6c6dbe54ab27d9}, Y: Fp{0x9430bb35513bc3e2, 0x06bcad87687c0ad0, 0xf48c30eaa392f340, 0x0e9aebe72c015cf2}},
		{X: Fp{0x60efb5491f04c6d4, 0x2ad9b96b601e3dd4, 0xc9e221fc0d2be9b2, 0x407ca3bcedd59a2e}, Y: Fp{0x3b6ac7b8bdc55207, 0xe1304bc3afe2f4f3, 0x97579daea8a108e4, 0xa5d65fca40045d92}},
		{X: Fp{0x9824f424a6f3beb1, 0xdf518c9e578d6a80, 0xb43daf1ee03833af, 0x397f77dcb09b8801}, Y: Fp{0x9575d1b6c5747228, 0xd797c7b984510c58, 0x03ea1bf5167ef7d1, 0x0cf1bc8c268b44be}},
		{X: Fp{0xb12b9aabeb52b5a5, 0xa26f069ba1965db7, 0xaee5a67a1b64ed06, 0x77dd67951cf047f4}, Y: Fp{0xd617f78053dde369, 0x6e1c118445e79fd9, 0x712d48649f0ea879, 0xa4e0d3b10e8e9db1}},
		{X: Fp{0xddba18afd6b2328f, 0x65dbd1376a497be7, 0xcc830a386611f7e2, 0x042f6adb68e564f2}, Y: Fp{0x472d095d5acc35bd, 0xe7b16aa8c9b7f5e3, 0xfd207d94289c8642, 0x8f5b2d0998b47103}},
	},
	{ // i=10
		{X: Fp{0xa0ade08af453ae84, 0xfba628696ff0c039, 0x070cb2db7ab7512d, 0xa06f0aa5d8b5db91}, Y: Fp{0x2b16ccc51d3dec55, 0x687b586cb8adf147, 0x531c3bcaaba3cf73, 0xa5789c5167af99dc}},
		{X: Fp{0x29997b4f26ac5700, 0x5f0ce6f31c9c7266, 0x18bef45ace1ec0be, 0x2aac2c9cd55f225e}, Y: Fp{0xd6ff71f6cbe46b6f, 0x26d908b2e45c2891, 0xc959b9bc42718cfb, 0x834d99047f2c5791}},
		{X: Fp{0x6805f43539ba2d12, 0x1435a6f161fd09a6, 0x0b3581d6e619abcf, 0xb2608fdabcae30d4}, Y: Fp{0x456f59c1f805cb2f, 0x3fecee3b4c2d9b14, 0x1748dd29d21b5e7e, 0x41a0e79642519b19}},
		{X: Fp{0xbc6c91c4ab64fcd9, 0x051b7913aff921c5, 0xcf8b2acdb0711bd8, 0xb34ebf7a6f8bd92e}, Y: Fp{0x54dd76eca5ed7961, 0x2ce42b2658dcfbdd, 0xa22af3af163858f7, 0x32dd2ed8ef08683e}},
		{X: Fp{0x1253a3a3f3981bc7, 0x7d6c512d4c0cea7d, 0xc9b007c3aa407298, 0x599f2b4e766a7905}, Y: Fp{0xa90d4df2faf86125, 0x595f64f5461a5305, 0x3b73754fffd54bcc, 0x0008175df3d0808f}},
		{X: Fp{0x0a23095cfd34f792, 0xcc1633092d980c94, 0x11299454a7a68474, 0x983fde72b144388b}, Y: Fp{0xab18b77a9cc73b74, 0x15e97275c7fd09c9, 0xba29ac9ea55ab900, 0x68d30d1ff547b388}},
		{X: Fp{0xa4b0010946e7182d, 0xe54ed4b10755f2b2, 0xc74e4d6586bdfced, 0x2e0f61888787fd9d}, Y: Fp{0xad7c91322120f9c6, 0xe4003a7e4bc3220e, 0xd6d58111a78365ed, 0x2321a8a6490049f5}},
		{X: Fp{0x1646ccf1a7064e90, 0x1710899c65f1ddee, 0x6962c1595f5d7f72, 0x509f3c1e45efcec6}, Y: Fp{0x5317ee1bea7123f9, 0xbade1ffba11616ce, 0x671f63771dca750a, 0x2054794b5bc5bc5f}},
		{X: Fp{0x0aa93e3f35dc7be1, 0x7e967b7e7d75ebf0, 0x5572bb64d5400c5d, 0x0c3aa3b3c1c6550f}, Y: Fp{0xb6e8a0459644ad49, 0x2f99d9a4db7fbfb1, 0x4e51f1019315fa53, 0x574d87a9df3d100d}},
		{X: Fp{0x364dc5be5594eacb, 0x5267f9d0b26e59ed, 0x62a065c541b5c70d, 0x3ca29c799ccd0283}, Y: Fp{0x0f03cad17e017ee5, 0xefad016ed08cbaa8, 0x7948919d4a504ebe, 0x5f685087005d2120}},
		{X: Fp{0x06d713e77c519d0b, 0xdcc9c8d7bdecfd78, 0xe7307a439987edcb, 0x1706f0a0abca877c}, Y: Fp{0x5f439bc39959fc24, 0x392a91d717187b50, 0xfbb16fdf2d77bd5d, 0x2c376fffd9d55b1d}},
		{X: Fp{0x461fdf2b93811012, 0x365a13e128d472d6, 0x098bb3a495497d6c, 0x07d536f185a1597f}, Y: Fp{0x29036035cc9a3ba8, 0x38f0f7062a5fdd70, 0xc66d990489595762, 0x53a78a26829fee1d}},
		{X: Fp{0x4ae878480887395e, 0x27de39509a30abdc, 0xaf4cb5cfd42ebd14, 0x59b6c09ce4b2af5a}, Y: Fp{0x799e5c8b13d73da5, 0xd492b8e2fc9bc647, 0xd8cde9c285ad7eb5, 0x458bbf2318f7a764}},
		{X: Fp{0x19dc58bf3c73ff3e, 0x7340d07c672f6e57, 0x9bcde37ec99bfd3b, 0x8bab50bbc360cdae}, Y: Fp{0x95f821c4e499f212, 0x04a7a9739605a8e3, 0xf584a5f7a57d8839, 0x4bf05d6b7794eb0e}},
		{X: Fp{0x671ea5284bb69065, 0x7147edd18b4c59f2, 0x8e48ef6d4c97b514, 0x63bf6fc6fb97922e}, Y: Fp{0x65e9f4747fba51e9, 0x0497a1ca64b4c92a, 0xdb32515931a3d28f, 0x09d61924d09510b3}},
		{X: Fp{0x3dbfe1c6ebbfc5ea, 0x97f1862e18cd69da, 0xad5392819ab444df, 0x9716cbd4ab69b994}, Y: Fp{0xf2036c128e72d468, 0x339322f8b768ff72, 0xb0e942553837fc7d, 0x1f34572bbf371838}},
		{X: Fp{0xc07f632fbebc4c75, 0xea31066afb579dbf, 0x2120973de84320e0, 0x07593e49ddbb04a9}, Y: Fp{0x1e6917d50bd56a4d, 0xc91ff40aa7cfffe3, 0x8e9dbbad977671c3, 0xa618ee32df89e9a4}},
		{X: Fp{0x87d36abba4c6acf8, 0x2258abb798b91a0c, 0x0c14b1f92cebefb5, 0x6f347836e2830e26}, Y: Fp{0x6d94996bc4147400, 0xf36980283310529c, 0x76d2a3f3495de2cf, 0x774a06e33551be88}},
		{X: Fp{0x008f8b9484c9fa96, 0xab6ca22ca9593c82, 0x3d0880c22323526c, 0xb34f54b43ef32a4f}, Y: Fp{0x2734ca8ab0843832, 0x2c378d3950039dbc, 0xeb680386f6eb1d3b, 0x581d168fdee9adac}},
		{X: Fp{0x0cb17fc680f02083, 0x8bfb97753ffc279a, 0x29558215d079b590, 0x69330adde4d60615}, Y: Fp{0xf0d6abeded693b79, 0x7619159d45d16f30, 0x971bc878592a481e, 0x6bda7cee9a59dba8}},
		{X: Fp{0xf240acdb93163313, 0xd2b97727e2b8044f, 0x8bd38b406f6dff10, 0x19fedaedaed05e8d}, Y: Fp{0x158b513fee70c715, 0xc17ce082b3da0e63, 0xd07d832e5a5da363, 0x6e44faf779a74eb1}},
		{X: Fp{0x34765bda66802c2d, 0xcc9809f7402538f3, 0xf56f3ec54ef6ebdf, 0xb61f382dde05fbfb}, Y: Fp{0x5201906712072304, 0xdf4576140cbc9726, 0x5c9e4727187cf2b4, 0x8d6cd575bc3cd3a1}},
		{X: Fp{0xe202705c1e3350ce, 0xefcbb431b9987f64, 0xc6e440585f6c831b, 0x1563efcda95f97e0}, Y: Fp{0xfb386a8e2f198e24, 0x596a549c94157f1a, 0x42811453f0c7abb3, 0x60b2f681759a59d6}},
		{X: Fp{0xd9b3165a381a3ff6, 0x9c877813c7fed2c8, 0x2583c79f6e8ff2ba, 0x686e62d705e2b437}, Y: Fp{0xe4a761218080545e, 0xf73e61c54e68ee97, 0x03c2f7cfbc3250d4, 0x8f5fb4123ce5a1d7}},
		{X: Fp{0x41bc07d2faad9f8d, 0xcb81e2906b22c0d5, 0x663823db2edfd6e0, 0xb09a805127f29c48}, Y: Fp{0xb5e8b018ddd07c4b, 0x1022a4342fabd6b4, 0x7587d06734e69ee5, 0x9c634b8b36e40b4d}},
		{X: Fp{0x4cd89a27606c4076, 0x70c2c157ae60ff25, 0x0041faa8d87d87db, 0x37d0cf31c30bd2f3}, Y: Fp{0x608a8ec458c70ca0, 0x99082ee1185cbef8, 0xfe0de326c8a94067, 0x9d24520cc1c8f9a2}},
		{X: Fp{0x994523b9a33a0eb3, 0xcd5b963f775ee142, 0xacb1caaf6180af35, 0x5a2cb5a56dfd529e}, Y: Fp{0xdcf2ce1579ae0985, 0x926972d3065d7aaf, 0x236b52f6ca60decd, 0xa89291507c0565d6}},
		{X: Fp{0x25c26e3f633a8e3f, 0xa80c21936f2b2122, 0xf30f48b76351dec7, 0x8bf93f095087127a}, Y: Fp{0x26cc43cd49a18e9d, 0x02eb929d15c27b51, 0xfdd3aaae25aeaf6c, 0x95034eaa0f2c3ecf}},
		{X: Fp{0xa7bf81b666ff441e, 0xa60c3e85dd173c61, 0x58ce5b8d49574f09, 0x62af9dd613e6d130}, Y: Fp{0xb1e2df1a2e9562ad, 0x29bdd07e9e0d9dff, 0xe67000470e1215e6, 0x982735ad6e18975d}},
		{X: Fp{0xbf4fdfcca85a246e, 0x3949a3147b5dc683, 0x38b60ea793c90202, 0x65d70226ccaf2443}, Y: Fp{0x9425dcc20e772eb5, 0x9956f465bf6d736d, 0xd5e8f121ddc4c1d0, 0x07011074b4a1f1de}},
		{X: Fp{0x9e9db887147d3005, 0x99919894ce928396, 0xc99efe3d47bf098f, 0xace2c642386ad755}, Y: Fp{0x511dd1f2d846cbd0, 0x2a2f726cceb000b7, 0x9135ded1568d761c, 0x5acfc6d4a0cca5b1}},
		{X: Fp{0x1a76bfd98266a0e4, 0x7ff012af3cd8c875, 0xc637537780c7b12b, 0x9d2a43c68fd21276}, Y: Fp{0x70b15dd711f3ee40, 0x9b1aa134b1e02703, 0xd5bb4948881c4c2a, 0x4600addac6637ef4}},
		{X: Fp{0x60582df1a393a2f9, 0x22e51bb474d8172b, 0x96ec2b5d24620f1c, 0x004c862860b4209f}, Y: Fp{0x9865315d1293cfac, 0x772c874b15252b64, 0x4264630c2f0c01ea, 0x0c7f616553ddf5e0}},
		{X: Fp{0x9696956af5182ddf, 0xb143e2cb363661a6, 0x0349b70dae9b05d5, 0x64c82e918814e30e}, Y: Fp{0x797182f54af8b582, 0x1d7e02117a99aac2, 0xe52794d21e5c4927, 0x15ea7d4576703b9f}},
		{X: Fp{0x05f2b25dbd77bbdc, 0x9a1e0c0aaad0a770, 0x7af32402160c1973, 0x319d737dcf122ece}, Y: Fp{0x3f1b8522417ab54c, 0x00e0c60499656542, 0xbe37df96553dbe32, 0x6f8d86951b17efad}},
		{X: Fp{0xb50f4470e2cfcd31, 0x9656de0d8877dc0a, 0x4b8d369528b76329, 0x13cf20dd6d9909c9}, Y: Fp{0xb28c7d02102825a7, 0x7e10389ec1190f0c, 0x22469ab836073aef, 0x396cbe2d75724a53}},
		{X: Fp{0x895addce0029233f, 0xa717e82dca95a92d, 0x8ca37a2e43086c91, 0xa4b28adfc3030db7}, Y: Fp{0x89eee41199343952, 0xb02547c1f56ee37c, 0x94eadb01e24e4b7f, 0x9e2bc626d0970714}},
		{X: Fp{0x25b6ec4d7e41eb46, 0x5b33aea70b2fe6d4, 0xc0c6c4ed192edbdc, 0x9a330a68f7a02545}, Y: Fp{0x9747cf730fc1566a, 0xd8f78fa3ad64356b, 0xf78cfac8f1208e00, 0x9e9e79d96bda8312}},
		{X: Fp{0x18b647be1ce14e02, 0xb14e89a55d118e0f, 0x42d35c78bd901e94, 0xb168baf386590750}, Y: Fp{0x4386a01fb8ea560d, 0xb5972418c0e09783, 0xc8f99fc471e1b306, 0x27dd22672219485f}},
		{X: Fp{0xb16d9fbbd052d0d1, 0xc36b15c5a0dd1b32, 0xaa9573a70a3f6c03, 0x0bacf6f0f7ff3602}, Y: Fp{0x0201ee34c163dd2a, 0xe67363808c7ae62e, 0x40ade9af774d966e, 0x2e571f9c43876251}},
		{X: Fp{0x1a5fd4c4c86f02d9, 0x8e44a796669edf4c, 0xe10af9da45425066, 0xacfc9b44e2cc647f}, Y: Fp{0x5adecec623324219, 0xbc0e4dc53d9b4e88, 0x1ff89eedcebad7dc, 0xaeb8f39bf2fd60d5}},
		{X: Fp{0xf7c0b5696020661f, 0x3cf392bb7cb66420, 0x6ce47102ccd13f1c, 0x57603219d5db3064}, Y: Fp{0x25e023ea8d6ffa09, 0x3dbe8cd9f1da0e23, 0x4be3fd6d44188511, 0x9e06b32be33febc5}},
		{X: Fp{0xf96acdae09c0599e, 0xc1fa88fd5d597a21, 0x2abbce6831ca8c40, 0xa2488e898eea7627}, Y: Fp{0x8d9d28d794cb5dba, 0xcf77e2c5dd85acbe, 0x707f8aa0d1717a78, 0x95fcbf0379b06f9a}},
		{X: Fp{0x5b24eb8f32e9f196, 0xd973ba58e2e04112, 0xfa5c252d7058bfca, 0x9664315c02e8c07f}, Y: Fp{0x8096a5ef4a456c21, 0xd117ce20b2c494a2, 0x2a41caab9cab0b1c, 0xb49470a3ee7a2f34}},
		{X: Fp{0x3e84218b850456c5, 0xaa6fbc75cb45696d, 0xc5f80d507e1e258d, 0x131ee0de05fc1ef4}, Y: Fp{0x9c066a0cb3719d97, 0x91cef0b26dc0acdc, 0xec3bd49712ab8267, 0x419c2db227023d70}},
		{X: Fp{0xbdec1d950748b27a, 0x9325fdac44de4762, 0x28f37534ecacda57, 0x26e578f47ec03f4a}, Y: Fp{0x864c7454eaf3c6a9, 0x299abc7ca96c3ce6, 0x4fed58a82088bd58, 0x54a0bd5e1a3c86e5}},
		{X: Fp{0x08221245981bc02b, 0xe3790ba9f24df7f9, 0x47cc9c85100bf972, 0x6d406525ac753ab1}, Y: Fp{0x9d3d40e3691691b6, 0x54f1da5f8713854b, 0x1c682a5aa801160a, 0x0a80504e070bbae7}},
		{X: Fp{0xf617497c43e6e268, 0x5a313262cf4103c8, 0xe3f821060adaa70f, 0xa8b9ad0d39974fbb}, Y: Fp{0x8eda9847d0a639d1, 0x2d4de0425c1b1842, 0x3aa195a0cce89309, 0x573b09052bc65d0d}},
		{X: Fp{0xca0f67bb6087c66a, 0xb0e7f094f4c88270, 0x95732b1e81c3657c, 0x3cb56d91826c7726}, Y: Fp{0xdea8b66cab1452fe, 0xbec7c6f52ed20cf3, 0xdc2a22109a5e1209, 0x59024d2d70f84e57}},
		{X: Fp{0xdfe89b0a751648b0, 0xe1411ed879c260fc, 0x60ac851f94b1cb8d, 0x66f790db95c119f3}, Y: Fp{0x3abf064391dbf35a, 0xab57258f78f6c549, 0xc0b84fabbd111620, 0x964154f4934bdcf4}},
		{X: Fp{0x5945faa4db9d56ca, 0x7978e655d1c0466d, 0x909fe88f63140edb, 0x6b013f76e674c694}, Y: Fp{0xa72c283e3cfe83f0, 0x9767cc0feaaf8184, 0xeaeb36c44df30013, 0x1ecffc0e2c2776c6}},
		{X: Fp{0xfbe2248287391e25, 0xfe875a381932e609, 0x40bda01efcfd6e1f, 0x8701e3b59a3a96a0}, Y: Fp{0x60fd036cbd71b697, 0xa64d5481eb57b3ef, 0x9f3839deb5a9f3e3, 0x3ae1907aeb571f7b}},
		{X: Fp{0x4ce059e9006c221f, 0xcba5da9b82ca0cd4, 0xf5a2a258e2b3da91, 0x2ece9edf494166f8}, Y: Fp{0x4cdbfb0f3a0c31d1, 0xd0f8cda06d22b24f, 0xa0dec2fa73e272c4, 0x24c38a2ed340c467}},
		{X: Fp{0xa68869f94a5ad6aa, 0xb30805691682c300, 0xf9a8e40f72101a9a, 0x929108d86a86c0e7}, Y: Fp{0x6a32a971d836c908, 0xfc5f69afd8f44096, 0x6a8014ea93507def, 0x2e9bb024d6ac0498}},
		{X: Fp{0xbe8dcef3e62e3f52, 0x9ce6e773a7fc4308, 0x46c7e37c28b60d38, 0x5e46ff6f83f88fa9}, Y: Fp{0xfcfe7f189115fda1, 0x8b4cd6cb1c1717f1, 0x885feef7ce43e8f4, 0x8748948659215110}},
		{X: Fp{0xfa8179b80c9fcec3, 0xa4bc88670a093ac6, 0xad3223241f07982b, 0x3f9f7f631b675cdc}, Y: Fp{0x8a891d152281544d, 0x1d7b707722f4ecd0, 0x0f9414aabc7883eb, 0x55d4a096ebb2b949}},
		{X: Fp{0x230801e5349808a1, 0xd535d3146a98b389, 0xa8a512ce19d7a29e, 0x12c15e1e5f8e666f}, Y: Fp{0x9759ba2ed96dacaf, 0x4834498bca6d1a04, 0xd63ea4f8d1b7e7ba, 0x0c24a628dcd73ae5}},
		{X: Fp{0x2ca44dae5cb7ede7, 0xa7f8e4efd484b19f, 0xd638da2064d7ba2f, 0x23906ec27ff25a54}, Y: Fp{0x69bd6de6a6626cb5, 0xbd7b31966b4e2745, 0x9eedd05e84e1b466, 0x625c05eb811f3e48}},
		{X: Fp{0x4a19e09ac7681702, 0x50b5595208dda83f, 0x9605fddaa95e3d24, 0x90495ff61937184d}, Y: Fp{0x995ec02c974d32a0, 0x69d2becc4a29ad8d, 0xb46f6af87afefe9d, 0x711355e6252deaa2}},
		{X: Fp{0x7145eb2872ddab14, 0x60411518b945db12, 0x2eeeda7d5d24bb8b, 0x7ae661d84109e95a}, Y: Fp{0x4b8c8f3637ac1335, 0x65bdac70af221aa4, 0xd812a5eae99957cb, 0x7a8092b522b48a9f}},
		{X: Fp{0x36d8faa9697e127d, 0xbd1d180c37c694b9, 0xa4bf4bbb934689f6, 0x959942c4c8f20bb4}, Y: Fp{0x04497bf648936b1e, 0xecf94edf8131f120, 0x942e8b80bfa3e8d0, 0x2f844946eca7be65}},
		{X: Fp{0x9cf9b5bc1a299e03, 0x250262a9669b3aa6, 0xf0af33d90cdf9f12, 0x9fda6adfaef43b7a}, Y: Fp{0xc0051ed433fbe119, 0x686d99fa21f3ceb5, 0x1138c6a0a798e6dc, 0x6ddb45ac31e7e38d}},
		{X: Fp{0x457629b806222438, 0x342217b8de9707b3, 0xd2bdc0219f8335f8, 0x44c89b519ae282d7}, Y: Fp{0xa7dca868a8af3333, 0x20f641880a4be556, 0x91088ad7db2a2c04, 0x7a1b471fa8cddbde}},
		{X: Fp{0xc3095dc51cf8d615, 0x474717df71096a9f, 0xc19d55a66d47fde9, 0xb2ceaf0fc6d0b85c}, Y: Fp{0xaa41eae381ec2190, 0x2fc8a43036557d4e, 0x3f2bb3f8dd6d7a86, 0xa8edec252d5630df}},
	},
	{ // i=11
		{X: Fp{0xaeb96f459d48f3fa, 0x89d5d0fc1cb4f1d8, 0x46ed1e81c9cf58c6, 0x4e71914c1700f304}, Y: Fp{0x1d78de4fa6e65086, 0x0015e629cc511725, 0xc9e35b0cd0c09896, 0x2b938c51ce20039a}},
		{X: Fp{0x465c90396dd56465, 0x905d600324c5eb20, 0x05a4fc0b3e789b15, 0x54891ba0955117d0}, Y: Fp{0x227a13a322c7a4d2, 0x480a8273015b7e28, 0xa247e224df12d6e1, 0xa606ed9511454b3e}},
		{X: Fp{0x80aaaf050dffed74, 0xc1fb04e5f8c7e7ad, 0x60022b7567ea1002, 0x9c0f1a6f725efc1f}, Y: Fp{0xd0ff13d0c438fa7f, 0xe58b7a9ebd6ca42a, 0xfb1fd4b951d53e44, 0x87953fbca1b507bf}},
		{X: Fp{0x419b32e3ef5be931, 0x4330976498630061, 0xdef1eeaae77c5c37, 0xad8c62d1b5e48dba}, Y: Fp{0x484cc80fd28f5dfa, 0x09f2af2e45621df5, 0xb246c0ce26d2c015, 0x4d087dceab451381}},
		{X: Fp{0xdcd3f6128c74ad52, 0x62c016aefa798e28, 0x77ffaca5fb8eb0c8, 0x40bf1ce8daa0f13b}, Y: Fp{0xfd306222dbf333ea, 0xcd2bd25dacc7e285, 0x78e304b9454f7b3d, 0x1ee263c077b88ba9}},
		{X: Fp{0x4af234206c030c2a, 0x176772e11326e67c, 0xddffeacd99e4f1dc, 0x9b8941c7e45e01fd}, Y: Fp{0x8f17a59e96e21ed9, 0x0d9752dcbf014afd, 0xe2459d4ea68dbb01, 0x44c0e6c53a570c7f}},
		{X: Fp{0x37f74a45fcef8352, 0x7a338e97a40b865a, 0x6ce4922201ea98dc, 0x5352b6722fd7d7c8}, Y: Fp{0xb1ef8809c39a7e34, 0xa24b10f94d527d48, 0xf739e9ee05f670dc, 0xaf4d85db227b953f}},
		{X: Fp{0xd0f10f69467dc641, 0x508275fbd948c2fc, 0x24382a8a3de87060, 0x67abeaafe61d9a6f}, Y: Fp{0x492d651d92dbfb1a, 0x332e89bb2e8122d6, 0x3c198fee0825b31d, 0xb281ef66b501b944}},
		{X: Fp{0x158d8c6b7bc64527, 0x58ddac770c4f7f4c, 0x0d6e1d1dcca8ebd4, 0xa51901eb5699a612}, Y: Fp{0x0afbf68283d68984, 0x0a93fad9e9d7923f, 0x06e378c8ba5a8d72, 0x34df0f64babd80cc}},
		{X: Fp{0x132d99fd67aff972, 0x59501e2062c5f07e, 0x0b939a2fb6a579e0, 0xa060f9066889efbf}, Y: Fp{0xf3f988cb53b6133c, 0x69f03996dc815fb5, 0xa6762c0e0dfc1034, 0xa101b0e494c14b92}},
		{X: Fp{0xfc55afc85b38687a, 0x313928da39a2cc5f, 0x367f8a1be865060e, 0x37544a5d978bef40}, Y: Fp{0xdf591d23777b6296, 0x9a073becf9825348, 0xe39d9632f7865b72, 0x2dea14abd6f85021}},
		{X: Fp{0xc40cc33355d64a31, 0x5037f04d195d78af, 0x9b901c8fc11610ab, 0x9f73eca15bdbc681}, Y: Fp{0x22bf78bbb6732981, 0x112bb800277dc66d, 0xa36082b1660462f3, 0x9c9d83aa5942fd1c}},
		{X: Fp{0xfd9501384eb5f05e, 0x6a2decadd2674070, 0xe1f6dc3c2d7aa887, 0x65e3533d472cf040}, Y: Fp{0x2d1af9fbeab90da1, 0xc0e8eb31e98fc26a, 0x225124dac52016ed, 0xb629d4af25c43db6}},
		{X: Fp{0x8369d73c4a71083b, 0xe011cc274867442f, 0x3319885e95ad8d2f, 0x2e7efd739bf12c18}, Y: Fp{0x867640da10601b8e, 0x6d9cd0c839e450dd, 0x086d9bf22438c9d8, 0x100aaa99f6b8e7fe}},
		{X: Fp{0xcc5958c11a02d859, 0x2661647eccf34f09, 0x0e7df9bca7d219ef, 0x64dff8aa637839b3}, Y: Fp{0x9b0f4df5d9d25b77, 0xbdbb1c77447af336, 0xb155fead5153e3b6, 0x6a41314860a153b1}},
		{X: Fp{0x60e1e5fd17711663, 0xb18b10f5825c42d4, 0xbe47cdebaa063aa6, 0x46fb777fe57f9504}, Y: Fp{0xd97c8708d0869488, 0x920187c7c8540590, 0x9064f2f758163bb9, 0x3c209d9672216cbb}},
		{X: Fp{0x50e90e5c8319841a, 0x40f5c18865e9c977, 0xcc01f2c292338e1a, 0x03a9479d752b465f}, Y: Fp{0x1eb0d25b97fc5428, 0x9dc356d5999241af, 0xa6bcd6e9954d2097, 0x4c3fe16769f18fa2}},
		{X: Fp{0x2d06b4d525676618, 0x61590f97e32328ae, 0xa1717df94573a191, 0x301b74b23ea120b7}, Y: Fp{0x121987b1b5fae48e, 0x4fe0c665661ce8d1, 0xb3342a2584f18b81, 0x404bd2dc33f47045}},
		{X: Fp{0x0816afe697bd1d53, 0xd22e2d0b9da2a0c7, 0xca5c6ab9ff550e4b, 0x147e861463280cd8}, Y: Fp{0x108dd06d1f082516, 0xd5b18df16376c4f0, 0xbcf7386976c8dcf5, 0x80bb992f0e2418d8}},
		{X: Fp{0x11a84fdc47f55a1b, 0x8b66c55f80474d13, 0xeb98ffabf01fd8a2, 0x1a4fe85ac3b9ced2}, Y: Fp{0xcc7a7c9ca8ba742a, 0x3a8d1d3febc42486, 0x41f8517bf9873a02, 0x8abbdf2e9b617956}},
		{X: Fp{0x76b2f812c27777b2, 0x3f9d3a10d0462ee0, 0x811d261f394775a0, 0x1d9dfb015a54324f}, Y: Fp{0xf52c413ac1211698, 0xdfc42a65b1fd6b42, 0x32faa15a4e155525, 0x123974440aa760fd}},
		{X: Fp{0xc7dd68e0ec9ddeff, 0xd9d912ebe7f86e54, 0xa479f44989843456, 0x229e4f4be190a3c5}, Y: Fp{0xc3581619d42cf22a, 0x8c28a791aab78908, 0xfb916f03a14231d4, 0x99d315d080c090ae}},
		{X: Fp{0xf5123049b949a3f3, 0xcef94093ce9fe503, 0xe575450690f4b6c1, 0x7a929839646ff303}, Y: Fp{0x859e64acbc3fa07b, 0x55b2fc453bf56806, 0xb01be90bc48c9d60, 0xab93b1cd49610097}},
		{X: Fp{0x9b4e8aa771fc47f9, 0x508952d93a465638, 0xeaeede93d628e6e5, 0x9d5ae53061805376}, Y: Fp{0x10356cabd476c0d4, 0x6e2e2f7ae5bcc4b4, 0xbd80f77d69eb25b8, 0x2ebdb289599d30a7}},
		{X: Fp{0x64786a96a3e98ae7, 0x1a6bc090279d5e6e, 0x53b051692e76c14a, 0xaa2e543eed5562db}, Y: Fp{0x8411b43c4bb56532, 0x47fdd340a9ba7896, 0x27da57ff4c1a0978, 0x37e857c45b9b3430}},
		{X: Fp{0x1c9a8950a4f91cb6, 0xf5e432e2f9f0b63f, 0x62406cd4caebbcc2, 0x0a379fa8369b8e0f}, Y: Fp{0xa901d78a9bc7b4a8, 0x375c18b798f65fe2, 0xb756ee31bacbcb3b, 0xa2d57bd5d50da0d0}},
		{X: Fp{0x2d4010e827146600, 0x099e220b2adbe424, 0xa36ca5055c805af0, 0x5490f51f6cec3043}, Y: Fp{0xdbe79f7a5f61a207, 0x6f554516bbd83031, 0x442f359ac32c76dc, 0x1f5d3c3388755c1b}},
		{X: Fp{0xe33fe0f0d198ec5c, 0xd75ee8290c1bca0a, 0xc5237a15910c7f7f, 0x57e26c1a74a22dfd}, Y: Fp{0x16fdb4993c04b5b5, 0xfc8b0c5371fe5577, 0x08d1281d8a9ff84e, 0x31def4e4c0200600}},
		{X: Fp{0xc6d8f18febe19db1, 0xf0bcbde530fad223, 0x5560195af88397ba, 0x7fb0ac1ec0b33abf}, Y: Fp{0xb271ec4d5a44e32e, 0xb8dc56a3ea747233, 0x83b24349dc634eee, 0x6ac8c9b66de756a4}},
		{X: Fp{0x039956d763788636, 0x61bc092ddd75ae60, 0x6a117026adf98b3b, 0x96853a4bf8e1c76e}, Y: Fp{0xe8cb47464e33ae98, 0xf38c9f57545a6cb0, 0x73da26d12efba1b3, 0x9598a1c93139baf3}},
		{X: Fp{0xcc1ba300b1db8c9e, 0xcfb9585e7099a56c, 0xf032ad0f1aa51fa5, 0x188363c4ffba5c8c}, Y: Fp{0xd0cdcd1b1417c364, 0x729a03a66d037202, 0xa80d712fe4eba748, 0x39be4d372f072463}},
		{X: Fp{0x07bf79086ebec844, 0x2323ef5dcaf7f021, 0x4afcac3365a87d35, 0x0315d1026d2178cc}, Y: Fp{0xbb795df69de966d0, 0x2ae65dfb84105aee, 0xed7a633aab415c98, 0xb5c0b4b7ec6515cf}},
		{X: Fp{0x02f8118f944e4f99, 0x39bb0631a96c13c6, 0x0484b975a57bdc4f, 0x10df9965001d5414}, Y: Fp{0xa7364f8e50c66e3b, 0x16a4840a3f33b625, 0x6c2152047e4409d3, 0x4fa45cc99090f065}},
		{X: Fp{0x7cb42ba79bbe19b5, 0x19da15d01ca220df, 0xb4c63493d36b153d, 0x78fba62088e2da45}, Y: Fp{0x61dcfbd8aaeaf776, 0xe3383fc562d55c6d, 0x25297259b542b65e, 0x58664d259101c8b0}},
		{X: Fp{0x02120461ab982fa3, 0x78c3101c1574e4f9, 0x36e515b713bb2734, 0x9e4d19f52810c876}, Y: Fp{0x5efd4ad53888fe11, 0x495693b0c9c2312c, 0x6b41d4b7d0f50823, 0x29de0cae089698e5}},
		{X: Fp{0xf540b0b3ebeed4b2, 0x42d0869d2c64a3de, 0x4629ccd24948717a, 0x3cc2dd0b1c0abe73}, Y: Fp{0x761694d5f02bce79, 0xe3d224d4f7670b35, 0x8f2f88632a897079, 0x799ee2b2c95ae7c6}},
		{X: Fp{0xc00dcc4c2a7d14c6, 0xe0661b21754a0725, 0xf82af9c17b938240, 0xa72fc162f1877274}, Y: Fp{0x336a37fdb0b0c4f8, 0x38987c5bad29e0db, 0xd62b2eff27df3701, 0x13263c1783447211}},
		{X: Fp{0x90b970d924aec947, 0x3e6aed191f0c1745, 0x18918a778878ee7d, 0x3ce972872c7007c7}, Y: Fp{0x41e99188352fa0b3, 0x9e9c7b2865297739, 0xf448ae76241e8e0e, 0x8f893e7ab6f509fb}},
		{X: Fp{0x3310c853875249b2, 0x2d9f568d88a2b2ec, 0x8237a09912de16e1, 0x358150b59fe3f2f2}, Y: Fp{0xc937f61b7d980c5e, 0xff018ffa61d09b0d, 0x1a5dbf94184701e1, 0x448e2a17834423f0}},
		{X: Fp{0xf634643be99d8348, 0xf0f67a236c67136e, 0xd7afd9a4b9c1ebed, 0x38617a12e7182dc2}, Y: Fp{0xa3d4250343535e9d, 0xc08d7fabc452ce1b, 0x685e76f004bcb8ce, 0x3ad589f79e5726c8}},
		{X: Fp{0xf50792582704b670, 0x80872d7dd47219c7, 0xc833797e1ba5a9c8, 0x9a79597b1e57f057}, Y: Fp{0x619faa22228c8f70, 0x128eb8d7daa72c83, 0xcd47c0721f569f2f, 0x49bae78577326668}},
		{X: Fp{0xbad620b0ddc87bae, 0x62585ac969d9be57, 0x450011e2ed1375e0, 0x99f7cf7e2b5391c2}, Y: Fp{0x0c877406d7d42b68, 0xe2d2a2f290b31c09, 0x8829885297729a09, 0x9cbe10b4b42e2d2d}},
		{X: Fp{0x47184f1270294506, 0x158d6de1f909d721, 0x4eed1bdae284bf01, 0xa8b504ec2df77eef}, Y: Fp{0x44f0a872feb09ae1, 0x6546bebbedb62da5, 0x3310d086508e6201, 0x7c7205f1b977b58a}},
		{X: Fp{0x5612a6af3ab7c29f, 0xddc743f9111d7c97, 0x09c22a416e527153, 0x7821ed60330fd521}, Y: Fp{0xcacf6efa976786c3, 0xd038da22aa83c7a8, 0x43bdeb04f9b772ff, 0x11e8a083cd707e93}},
		{X: Fp{0x9328ba54d75a2248, 0x10fc7d085121903a, 0x46a18226ed8b7011, 0x65ef844ac2e2f63a}, Y: Fp{0x2022f4c7fff016cd, 0xf76799ac1dc09a5c, 0x8f532f5b5995158b, 0x169d66739a04a6f7}},
		{X: Fp{0x389d889a08598843, 0x61e1a0e95de7c646, 0xb32272728431fbba, 0x9543d96a33bb1a7c}, Y: Fp{0x56f5524e1d1a38d8, 0x88dfd2850fd3279a, 0x9abb6484575e6ac8, 0x245a29aff9fb6e50}},
		{X: Fp{0x12fca954114a5c51, 0xbf635cb8290d7f48, 0x5dc0b6664a3e2e95, 0x27f8c8ba81c1e76d}, Y: Fp{0xaa5c7497d8cac822, 0x7f5260db811d9cee, 0xaebfd9157a562c84, 0x4e9bf78ed13a4683}},
		{X: Fp{0x36c894cfa41ef7c3, 0x779d9dbc6ed2df14, 0xcc4e53e96d745ebd, 0x276fabe8f943e525}, Y: Fp{0x740f5dccd1856b47, 0x2771abb74e1d37e7, 0xe9d3bf9ed14bbfad, 0x293020b4e64ce982}},
		{X: Fp{0x7d412706e4c72632, 0x628ba5182e236cce, 0x546773d4d75eb805, 0x69f0e67f211e66c8}, Y: Fp{0xdcd5085a80c4b42c, 0x62df8164de95d679, 0x814ae06352c70c80, 0x75c44853e9cd7411}},
		{X: Fp{0xaaa44f80adb53b2e, 0xc681d1a80da9681a, 0xbc082bb4319fe8b6, 0x9b7c2898e1fd23fa}, Y: Fp{0xd8f164ad8f637645, 0xd4663ba22e939d1b, 0x95f2078fdeb59e80, 0x56f803427f6a5ccb}},
		{X: Fp{0xd69b93824dec1bf2, 0xc3bebd25187d6874, 0x4d4cca4cc77cb04c, 0x8740b5e477b4b57d}, Y: Fp{0xc6033faf1ef528b1, 0x091e61bd4e717611, 0xed0490e6573976db, 0x26a0e6c6de898136}},
		{X: Fp{0xbe46aa5d7bb0707e, 0xccd82e0d2c777967, 0x681d6c294cc93e97, 0x1c15e44467d95c3a}, Y: Fp{0x40f2e55eed418c20, 0x84e1fb6808652ac1, 0x660212b6f52e39cc, 0x1b56cc4e6324d839}},
		{X: Fp{0x74ba95f94560c966, 0x6c4cab33f3a53fea, 0xa9d337b7661ec3fa, 0x4fdde700b2491030}, Y: Fp{0x6a7d966aff712955, 0xb090d5a360b7c7ec, 0x07023a743bc9322a, 0x6d39e325618d5cc1}},
		{X: Fp{0xe687be5e9b1253d6, 0x793405a4689a50fb, 0x6577200053fe9adf, 0x57f47c01873ce81b}, Y: Fp{0xc6e06f50273397ad, 0x4b0449d54f59a6af, 0x3c44a8ba85427b41, 0xa6cc85421dd925e2}},
		{X: Fp{0x16bafb0710e2d85f, 0x5042a0b1c27950f1, 0xed8496671c90e33a, 0x1252d0a2c58ad1c0}, Y: Fp{0xd1f7035ede6306ce, 0x3cf4c37522ba3701, 0x58bf0ab48a445c5b, 0x18f81d599e52a102}},
		{X: Fp{0x5d24bc7d237789df, 0xf18266b07c0e53bf, 0x27b306bf16185ffc, 0x3deac74adfd39d68}, Y: Fp{0xef854e328b6b101f, 0x3b4ea42c6422bbb0, 0xe61c4ee2f9c9a520, 0xa91a9eaebfb3d0d1}},
		{X: Fp{0x716cf5a6bebbef15, 0x98a7e41a1f1d7ede, 0x2067ac5cd1e4f530, 0x9e253abe6935c86b}, Y: Fp{0x156a0a8c12a823bb, 0x38a1ede03e7eac94, 0x409c2cc57eacc7b5, 0x3b58adad112ff0c2}},
		{X: Fp{0x1b8fb6faa7f44326, 0xdc1417ba758b84b0, 0xfb5bf2a759c68929, 0x68dac0aa6ea2d8ef}, Y: Fp{0x88435d89f3cb5804, 0xc35aa6c89e979b90, 0xd43ce1f20204a2d2, 0xa5c8ea9855c2d3f3}},
		{X: Fp{0x2d4aa24ad6649cf3, 0x2011bd14d2ea619e, 0xdf4b4b844499207c, 0x12131a144e0932d6}, Y: Fp{0x549fee92ed2fb033, 0x18e098f3cf3f7d68, 0x1487c82c3467eca9, 0x662a5f702d97be83}},
		{X: Fp{0xa3d5f6b4044f3dff, 0xb64b2922e564f39e, 0x037306f2e0d1bafb, 0x398514b4a61e48a2}, Y: Fp{0x402c3a5520352170, 0x5e9b45cc48f1ff45, 0xa0283a97810459ea, 0x6de2d924eacd4459}},
		{X: Fp{0x9322c83185915c7c, 0x6e97c7e2e1953a1e, 0x2606dffbb3039490, 0x53ce63b1f4749ac0}, Y: Fp{0x2477f72b8b0a6048, 0x20b4fdb8db66ac0d, 0x332b5255b73725ff, 0x375b834990f8fd97}},
		{X: Fp{0x29c43b696997bd8a, 0xaca089d0e511e3ed, 0x720b116a54ef2d63, 0x3f8bdc3fd5c24b6b}, Y: Fp{0xb65495b15977fb4d, 0x3d9300a7092124f8, 0x2e5ccb138c3d9374, 0xa79f410c16a4bb0e}},
		{X: Fp{0xaf099dedbf127d49, 0x67cc187c95f9ce32, 0x472d165d49dc1da4, 0x9256df6b2f0b1a34}, Y: Fp{0xb1120b45d45c2d32, 0x1d486028172b2240, 0x8d285a3061e620e6, 0x853e9728ac281bd9}},
		{X: Fp{0x179ce3953ce568be, 0x973492224c5b3496, 0x1cb833260aba4b31, 0x5b9d132f4f0f7395}, Y: Fp{0x5174395e120ca8cb, 0x2ffcc54c0ddfe493, 0x47e682144e8baa30, 0x34f6f457b86828cd}},
	},
	{ // i=12
		{X: Fp{0xe0bd995abdd2bb07, 0xed2f29fc37b5ef5c, 0xdce2d6fd9e091212, 0x2d2ca4933605467e}, Y: Fp{0x1acc60f2eb62c977, 0xdceaa2ee930ae0b3, 0x1ef14e8a747919b7, 0x07ef641be1a0b633}},
		{X: Fp{0x9af361bb29f28c11, 0xfe351df1dec741db, 0xa27cb3f54a2fd49e, 0x04d96d631bbbc535}, Y: Fp{0x3e803e7d2e64b434, 0x01240cb15e8e3e4f, 0xddeae2e65a5c6129, 0x680b316596603644}},
		{X: Fp{0x16c4f5929f5b1c65, 0xc23af23c05803bef, 0x59d1a67af0f45fb8, 0x4a707c9f78554adf}, Y: Fp{0x391980c5ce695e07, 0x1122c97bda53089a, 0x82b6cbf7bbe0de9e, 0x73c4d63cf912f219}},
		{X: Fp{0x15c1db35700c7488, 0x263efe7e3f9f6890, 0x98a0c3208aa718c9, 0x4965b3571b06295a}, Y: Fp{0x1e49508b8b5d78c9, 0xc4a2f1cf4fc03663, 0x1266524d20b816af, 0x543e5b43242d032f}},
		{X: Fp{0xac2fd02b0ca703bc, 0xaa1393812db65a4f, 0x8e094e210aba78e1, 0x75b9d22b307331e7}, Y: Fp{0x6d893554eec1cc57, 0xc3358fd791a59065, 0xdce8cbf08b100cfa, 0x640f1f173f4be4f8}},
		{X: Fp{0x2dd649601fcddf73, 0xf9581f8027a6f742, 0xda2128cbe10ced7d, 0xa723fef8376eb80d}, Y: Fp{0xcb9c3009d4ba5b97, 0xfd8636139e083743, 0x711339b936e68928, 0x0e7076d1b651cce8}},
		{X: Fp{0x790ddd326e9bac7c, 0x29c6dd80fa885922, 0xbee2b9b20110fba4, 0x622cba1b34ed1f32}, Y: Fp{0x7bb9e22d5317bcab, 0xef9148a9b70a51df, 0xde798ccbe0925cd7, 0x039195fc140b4309}},
		{X: Fp{0x231044cfbdad225c, 0x8f5282e63f639887, 0xeb116fd57382f06a, 0x5dd1c347cb329fc0}, Y: Fp{0xb64996c7c8ea48e1, 0x7f2953bbcf2abbd5, 0x876f7c55100887e1, 0x50273905565efe0e}},
		{X: Fp{0x4b82aa1f0d0d1400, 0xceec8660b8e1320f, 0x2125af56ca08f136, 0x1ea38c4c44d9fca1}, Y: Fp{0xc9f9e277b793aed6, 0x6901bca1eb3e6c87, 0x2330500b6b56bed5, 0x6fba372bf1f0742c}},
		{X: Fp{0xdcd19bcdc44dfbd4, 0x488c397b52099774, 0xe10deb803f9b3884, 0x04c5f41b469688c0}, Y: Fp{0x52c848a8f0ab4e50, 0x57fb4e909591f2a1, 0x10e05f88b16483b9, 0x7c552c58349b090c}},
		{X: Fp{0xd9fb8f34d4178a47, 0x8200cf6261a3730e, 0x4f73105616127914, 0xb601260a8464f9d0}, Y: Fp{0x0121b6ebccaf94a8, 0x9b1e3494109e679f, 0xdce24789cbd00bd1, 0x2c9f3c32133de9af}},
		{X: Fp{0xb2fae0e0921ae716, 0xbd97a4e7748ea217, 0x1995389e2fe7a7f6, 0x88ee5c287399dc69}, Y: Fp{0xa946e49f6baa43bc, 0x1c90cc29d3108f9f, 0xad694b1b6a08cf9e, 0x14c816cab8f4cc98}},
		{X: Fp{0x035774cee13daa4f, 0x8d6b3be1ad642d06, 0xcb967ec1fe0e6848, 0x0f4b81d171a42c79}, Y: Fp{0x01a9e566a7ba5161, 0x79c27a03a237a883, 0x519dd23a4da9192d, 0x41800cf43a768b38}},
		{X: Fp{0xa483cb892350a42b, 0x923a1d3e74601886, 0x7cf3105b4db94e85, 0x3087ea2b7e7fee99}, Y: Fp{0x3b4b7dc9b7126a1d, 0x0820ed241bc8f75d, 0x71c880934b9012e7, 0x95f1463e5ebf8712}},
		{X: Fp{0x3d0b8ce0877fffc6, 0x6f9ec3c9ea71dc58, 0x3423ce91cd300786, 0x90fb174c18d0e328}, Y: Fp{0x57606e7bea95cf63, 0x672b70a62b381869, 0xbfbfbf4b3139108c, 0xa178c7e699891ad6}},
		{X: Fp{0x88e227969f406d52, 0xd855b0866f5ab01b, 0x105c8ee50f4865de, 0x5377425ebf54f396}, Y: Fp{0x2ff95a41b64d8ae2, 0x377677d7f92b3b04, 0x8b1ca1341e7dddbe, 0x8a34704224e5cc0b}},
		{X: Fp{0x9819a4bde46b342f, 0xb84fc53506a1232b, 0x64cb99c20655a18e, 0x54c2e296be1f6010}, Y: Fp{0x8b6ea4c5f9aa8db2, 0xe6265045742bb08e, 0x2e59a590ee53b2a2, 0x8f0501683f6f9e6b}},
		{X: Fp{0xc169c2c89f0c3cf0, 0x5787a1a99bde8134, 0xbb8267cdb11b520e, 0x30f78849e9c676e8}, Y: Fp{0x8fc4e310279ee428, 0xef86096dd98922ed, 0xde1cb30637ddcb0d, 0xb28e53c8fee2910e}},
		{X: Fp{0xb9723c72e3849f39, 0x88e466a140d15f5a, 0xbeb9488e82f961e5, 0x18d793e3e107f7d1}, Y: Fp{0x0a7b75c7bddc10f8, 0x85f06b76c161acd8, 0x80846259932e5815, 0x76cf24500f191b58}},
		{X: Fp{0x40fe25e1ade7f831, 0x07dc0384c739cdc4, 0xce59f9daf058e2ff, 0x71cdb1a3bd8db256}, Y: Fp{0xcd4f6c5f1f7ab47f, 0x73c718d942afe794, 0x057ed7c4fb449416, 0x0f1ac699539e0485}},
		{X: Fp{0xf3938752abef4c40, 0xbc5f2f289fa7ba97, 0xcf2ebe720fb8a32c, 0xb2c1d3891fb1b044}, Y: Fp{0x699a734e5745a158, 0xab4cfa66b3b95ae9, 0x64f3e92bfc67584f, 0x7f2a2d69d39116ff}},
		{X: Fp{0x5b3ff9e10fedf8a5, 0x04fed01856b344d0, 0xbcbbfc9cc9812767, 0x128a0871234992cf}, Y: Fp{0x105fa9dbc5d2eb44, 0x1ca8ef5a92398855, 0x4b62da770b8a0fc2, 0x3100ab1192cc679e}},
		{X: Fp{0xc74f467bdf06db4a, 0x6cc7e3d10ce880e2, 0x8adb520644faa1fe, 0x7abf7106926b73f4}, Y: Fp{0x1055beb5286ae7d2, 0x98eec6d1d6172a9a, 0x8820d73280d99e69, 0x65596ad7e7766058}},
		{X: Fp{0x06c4204ef6620133, 0xdb44f31490678e46, 0xea25a5acfe5c81ae, 0xa50b40670c297a81}, Y: Fp{0xc3b13e970fa4cf3e, 0xbdd6accebf4a863c, 0x31b5be02db6a51c0, 0x9858f4eef3480f3c}},
		{X: Fp{0x82d22f6caba2eb7e, 0x6ff974f76b714ae9, 0x444f9c0157a6b566, 0x7af320850a8c9a00}, Y: Fp{0xd89dfe3aada2a8fe, 0x3a6dcf3a1092f427, 0xd0819a14f157f53e, 0x0c0afdf1b68a8641}},
		{X: Fp{0x5968ff2f8ee1363f, 0x2a9f2c4a80165408, 0x64924c07b9653f26, 0x684b8d2755563682}, Y: Fp{0x6c9f0ce26e72ec40, 0xa0ee9a6d66226a8c, 0x42bdd7c10f8ed9a0, 0x0ef00e1c1443c2b6}},
		{X: Fp{0xd410a3c514659068, 0xf64b36a3aa9758f5, 0x619242c1440b1fc6, 0x6935d3e8e657299d}, Y: Fp{0xc004a3a3984559a1, 0xfc8d1113421ebaff, 0xa2d5a530bcc0dcf1, 0x3aa27a6d405c652e}},
		{X: Fp{0xc795f0da974c9172, 0xc0620c651a4a7422, 0x87b261b28a0d0026, 0x3ca7ccae1334085e}, Y: Fp{0x5818420163c773a0, 0x637a4ebb3e41bf35, 0x76143f31058cd1a9, 0x20d1434fb0e7d9a2}},
		{X: Fp{0x2110e73cf188885b, 0xeb89b0b716184f3b, 0x5472c6f409ddd2dd, 0x8d7db552f50e0fa8}, Y: Fp{0x904dd2b2214a14bb, 0x260d5abc53b368bb, 0x55f4e53d69ac7992, 0x385808d1fab44358}},
		{X: Fp{0xccd00ac6880649e1, 0xa6accaaf1dc6c26f, 0x377c0217a9735c71, 0x1cd4255ce24bb50a}, Y: Fp{0xf18a6fb2f363214c, 0x427624f047bb8c33, 0x057d411c5ff161d9, 0x31a93308876f08dc}},
		{X: Fp{0x017fc3c38edce8c2, 0x1b95960458bda19c, 0x88c2cd12d8e08cbe, 0x4ee05c9d98520f34}, Y: Fp{0x2266aaf2d914be24, 0x878cb9e32e40e6f1, 0xcfb40032cf817f46, 0x58c5d2acff47d4b2}},
		{X: Fp{0xd97f3ff2d1cfb9dc, 0xba12e720a1d3b0c1, 0xaa147afae0b0625c, 0xa19cd09db6eef83f}, Y: Fp{0xc05d4569b690b9e3, 0x62bf848c14a6db3c, 0xab8c107b37063f54, 0x6b93d0f7c15ebac4}},
		{X: Fp{0x79468cb205d21130, 0x9865eae5c008f607, 0x38d7b96442fdf226, 0x429e6bec46342c17}, Y: Fp{0x27e4171d1b3f8365, 0x3e4a26672852a5b2, 0x4c4a80765d16878c, 0x955f0df9cd94d6c5}},
		{X: Fp{0xe7667895b27bfeed, 0x9696bf9e23bca0fa, 0xff23463f787eff78, 0x6bfa056a87d48ac1}, Y: Fp{0xe74978ccf7b071c6, 0x8d5a541ac21a01ae, 0xfdd56efa627c4768, 0x0073b2b80922572f}},
		{X: Fp{0x238cb50b3aecf94c, 0x27bee1b54fdd9ae3, 0xd0278e1491e79aec, 0x146280b2fd92a065}, Y: Fp{0xa0b54db9af1a2908, 0x6f38567f6c37c7d8, 0xa8ee89804f404a27, 0x4d9fc0aecaef6f3d}},
		{X: Fp{0xf34a41157509260a, 0xfa6d52176b403e14, 0x8277945d3621ac4d, 0x29e7513a3b0e4020}, Y: Fp{0x8715d5772575683d, 0x093894fbd52190b2, 0xbfcae60e58d8fe03, 0x9d2eb2b85ce3bab2}},
		{X: Fp{0x7249a019a8a4c539, 0x49d44c12a1661bb3, 0x759b0c63ff77a633, 0xacae42ca4d48355b}, Y: Fp{0x446fad8bd43daf1d, 0x2cc1330632a15f14, 0x29577fd9e9b74295, 0x17b47000f182f01f}},
		{X: Fp{0x7ba6567e3b47e7fa, 0xa689c19ccac6b40b, 0xe5ee7519de6ebb5b, 0x76defce203cad102}, Y: Fp{0xdff01a6e55fa22ed, 0xe14098d3ee7d2b5d, 0x3fceb0b5638b15aa, 0x99772c3f8fe0e0b8}},
		{X: Fp{0x8deae54b19b45fc5, 0x002557d913eb9798, 0x6c21bfd77385221c, 0x7186e1a9267c1395}, Y: Fp{0x7a17dfc8eac43249, 0x4f9b601cb63bdcf2, 0x4c2f709ee4101765, 0x9ceab3610bfcdc82}},
		{X: Fp{0x9c60561cc562c962, 0xef1780d73fded2c7, 0x990f54e058553f8a, 0x6093d0dfc0a953e9}, Y: Fp{0x74a9dc091a609759, 0xf2d29ffdc724f9da, 0xe9c7ae582c835590, 0x4a7390e55856e256}},
		{X: Fp{0x772e8a0a3f3c1668, 0x77d06687d6ce3a3a, 0x7bc6059c04c23ea9, 0x19343290fc342818}, Y: Fp{0x3f3262efcc92e57d, 0x4422860192302e7c, 0x2bbac5ef38ea85bb, 0x42d2983621f4d7fe}},
		{X: Fp{0xdf72fa336a0c049a, 0x47783d406691dcf1, 0x60d12321864eec67, 0x05557edf04bf6bb5}, Y: Fp{0xfa6bc72afcecdd50, 0x41f4aeb4b7f0abfb, 0x7c061e47c7c3cbd9, 0x9db36927d4fe6440}},
		{X: Fp{0x8c911cd6b7f55551, 0x7a741a4903beadd8, 0x7f47fb2f30083a51, 0x79bf5d452df152e5}, Y: Fp{0xfbbea1bf895c66fe, 0xc209b12375d9a0db, 0x00dbf05ea526c9cc, 0x7bcccd439222e3c9}},
		{X: Fp{0xee5561005d701c86, 0xa65b5b9f2b32895c, 0x5d665d450d5a4de9, 0x86077dbbf99c54c9}, Y: Fp{0x4a36d400d30ee528, 0x98ed8149c1e67de7, 0x799ff2e58132e1ed, 0x084c750aa0f63d84}},
		{X: Fp{0xd28851fefea2dcec, 0xa5f666efe861f151, 0xece2184d3f7e0779, 0x25161d5879793a54}, Y: Fp{0x5c9bcbf231ccec9e, 0xc6f8b78cf09197f3, 0x6c59666a888837d6, 0x0fb4a720edfe811c}},
		{X: Fp{0xad050e155b135432, 0x3df056c568513c6c, 0xaff0276209b6bd75, 0x3dfcacc59b0ba7a1}, Y: Fp{0x2c6e092422ef39a4, 0xd1baa6f841565d9b, 0x5533772471f98b7b, 0x666e6aabae52e70f}},
		{X: Fp{0x22e415ff5cac6ae6, 0x301d30a45e828ebd, 0xb5ae73a85f4c0b51, 0x47ff40bbc5dccf18}, Y: Fp{0x1bb4e44e38f1e2c6, 0x24bd5ccbbe34e71a, 0x352ebe55c3c082c2, 0x986e8bb727db3cc8}},
		{X: Fp{0x7ba324b9d2a474ec, 0x8a797aeb6d63a7fe, 0xfe7922967a853fd2, 0x040cd2c8bffae10f}, Y: Fp{0xac46732794d65353, 0x3d3a27d3f14b9b24, 0x5f649fb8999619e0, 0x9c165e0f389c3a63}},
		{X: Fp{0x66aeeb29f0940c7b, 0x6c1e5c63b0313bea, 0xbfaaeb9a72f748d3, 0x1f0b51e8256c75f5}, Y: Fp{0x12a896fcf554845a, 0xe7f8838b12b2682d, 0xbe6d6cc59f5e2a38, 0x11e0d2f85e33408b}},
		{X: Fp{0xea65f4e27c7ed437, 0xa90186726bacd04a, 0x12ec80f5ee7e57c5, 0x219576e4034d1a4f}, Y: Fp{0xf4b2b27af7c02fd3, 0x2532f1f711c4f006, 0x53465dd95987d903, 0x1b7b3fedef0508bd}},
		{X: Fp{0x8eebdebf84491aca, 0x477d811c931c62d9, 0x6786df1b8aeb6f06, 0x6b9e917e71df777e}, Y: Fp{0xc6b6f278627777d3, 0x0a28c715c68955ef, 0x19b356c7b6dddd81, 0x41f23246393d3ae7}},
		{X: Fp{0xb319b1bb367b84da, 0xb5d2955438f3ebfe, 0xcc2232dbd97745d1, 0x7d9adaa71687c0ae}, Y: Fp{0x7cf30ca4d103ba2f, 0x1ca6eee463c37a30, 0x6ea923bf173069ba, 0x89ebfe4975520c16}},
		{X: Fp{0x302d2e65931fcf4a, 0x1de0027e93383f90, 0x31b645fa327ebfff, 0x097422abadb353df}, Y: Fp{0x8409c28b9546f479, 0xed12928e67c7e4c1, 0x9f1a5fac09dade9c, 0x05aa1d49f8978b76}},
		{X: Fp{0xc42afc194e96dc40, 0xea3fab311bfb1c2c, 0xbb22c350f9a6a8b2, 0x21cfc73980f8b8d4}, Y: Fp{0xdd1d1c331894f476, 0xcdd67e9a939371f5, 0x21ebd9a49626ac80, 0x9df4565348d457fa}},
		{X: Fp{0x1eace7fc52b487ec, 0xe136bdf4d8474c8b, 0xc79aed218a5eab09, 0xb52eb876c7cc6a9b}, Y: Fp{0x9e3f1671b8c177f8, 0x781af8f4c1d95e5c, 0x8e4af00f9fcb29d0, 0x65e08a239fc913d6}},
		{X: Fp{0x8163481ed293c001, 0x93f98a9d07c37053, 0x516fe30adf8205d3, 0x2f229e1db85f5c00}, Y: Fp{0xc13fc220ada5774f, 0xa301e3229b13d9c3, 0x3199004780879ca8, 0x22817bc25fe3d810}},
		{X: Fp{0x6e6b7d20c6b37cf4, 0x61ac31e1f01b0132, 0x97a2daaed8b7c8c1, 0x69eadeab83bf60a4}, Y: Fp{0x667fa11613efc3f2, 0xd27439b90ee5ecbd, 0x21d5be8bd3ba4563, 0x562ff35bd87afddf}},
		{X: Fp{0x5150de8b85e616b7, 0x4e4d6db9ccfd5fd1, 0xe5d4f0ea6a5e5f1d, 0x502f6a131ec22cda}, Y: Fp{0x6305c4e92b02b1ff, 0x7153cdab5d18ed8a, 0x47c40d0a95e5b050, 0x7d86a459d3584b4d}},
		{X: Fp{0x435e83439f5b7455, 0xb254a628a449938d, 0x0b636ebe8b60e409, 0x7748cc2f7cad54cc}, Y: Fp{0x8c9fe6fb52b5af9b, 0x9ba1d7f2821c3f33, 0x2c02b89f447080bd, 0x112a3173bc7110cf}},
		{X: Fp{0x36b1e67200f297e0, 0x6853879a7ce7fe79, 0x4e25bf9ec4712f74, 0x2d490dca14f28f83}, Y: Fp{0x4aedac42489fe127, 0xbd19e7f7c0b45bdc, 0xc51ed6256951ebba, 0x629a3f12fd8f8fe9}},
		{X: Fp{0xd784f9f9af72fbff, 0x0aa0282d5ca31f78, 0xd79bd91623359efb, 0x0d1ed06a4e50d83f}, Y: Fp{0xa0acd42218acad45, 0x712db0d5d42905f5, 0xb6d88a993a5967e8, 0x510073644b82ff86}},
		{X: Fp{0x9aeb95e68280ca1a, 0x3ed423384d684145, 0xf9db86e12c718617, 0x919b0d6b8af3e8b2}, Y: Fp{0x83dac3632b5ea4b2, 0x66a4c1f78a9e6aad, 0x902344a05464555f, 0x83e2de51050bf328}},
		{X: Fp{0x6446f6126afad5b6, 0x1416f3ff5c78de0b, 0x196dead3916f256e, 0x42cba03f1771c329}, Y: Fp{0xe2a6b9713b85bf81, 0x3c48b0171cf4cda7, 0xe067a0060db1108a, 0xa02a53a79b61882c}},
		{X: Fp{0x6a62276170a94ebd, 0x8c31b20dd24e100e, 0x248ec38a72b3c481, 0x863026a0e3565977}, Y: Fp{0xc1ce99d90b8009f2, 0x3222608e3d6a4bee, 0x48a74a7a691fc21b, 0x1d6d3b0d865880bc}},
	},
	{ // i=13
		{X: Fp{0x7755407bb06f2c13, 0x55396e3065978b17, 0x0bf4b4d76ceb9120, 0x040ce08792eb003f}, Y: Fp{0xfa41e34b19298868, 0x496fda2969726225, 0x156957ff5bb03e0c, 0x6fe7148233661a1a}},
		{X: Fp{0x97d083c9a5fe416f, 0x2891bbb50a50c213, 0x7e265e6126b32005, 0x2db9112277440505}, Y: Fp{0xfb505bd16e3b01fd, 0x69ca7bb7571c0757, 0xf49e661115f5f493, 0x59ae76f9d3872ad6}},
		{X: Fp{0x953723b707a70708, 0x38fd9041afe54eb3, 0xabb23acfc7f47c2e, 0x16f32047ba625282}, Y: Fp{0x99f1ed1828cb19e0, 0x61fe4ee4e210071f, 0x4d0f895eff297048, 0x2bbb0e63e2555d10}},
		{X: Fp{0x69e8302759d1ea62, 0x171ceebbbd2a7e6c, 0xcd7c601bb8639b8b, 0x8796c73547c95e8a}, Y: Fp{0x5876209bfc316a6a, 0x76c3f8fa853739f0, 0xee3a3d3f22c898e1, 0x99a59d56d8eb0457}},
		{X: Fp{0x41766acd634d18d9, 0x3b0c64dbda4e854c, 0x613439eb2365a48a, 0x55e1801c1fd13b1e}, Y: Fp{0x90946371f8254be5, 0xa200c1862e02105a, 0x4b4f6e960ae50509, 0x54393be5e8e6fcfe}},
		{X: Fp{0x5ed1fae899ed1a33, 0x1811618c0fb796c6, 0xaffe263891cf783a, 0x57db0934b0174cc4}, Y: Fp{0x065fbe3cfb33b3a9, 0xc503d1fbc6e9b1e0, 0xef15900a2501c59f, 0xa726173c418f07e1}},
		{X: Fp{0x9a64b351ef69627a, 0xdc0f5b29eade7f7f, 0xe8e8c63ef085a13b, 0x3e8aa7465500878e}, Y: Fp{0x01d875b30ef28ffa, 0xc2fc2c0fc0b80004, 0xc57c8de2d343e821, 0x97d0b92fb2e296dc}},
		{X: Fp{0x7407190f6db4e852, 0xaf4e16ebba7dabd1, 0x20e3499c2567fad6, 0x7d51cd60054a7004}, Y: Fp{0x68a8297357f363fe, 0x4c5131ff1e6acb45, 0xf33360225af7334b, 0x13214a689b6b5f72}},
		{X: Fp{0x2391aa082b442a0d, 0x9b26487eaeb71ec2, 0xb3139790c610c5d3, 0x03d6798f945e394e}, Y: Fp{0xa24b0f98f3380401, 0x7fc3cf9a287b37c6, 0x46db1d89c8977b4d, 0x2ba7eb56417d744a}},
		{X: Fp{0xd76a9abfa570c762, 0x50fa071994b7d56b, 0x4cfee12583b27a08, 0x38f6fc0aa10b1bb1}, Y: Fp{0x57644529980202cc, 0xc3758b702da4a3c3, 0xc0b270b258b42cb8, 0x0a3c68dfc8c88bac}},
		{X: Fp{0x8b4376b01c27ff84, 0x7f3f0b24f8dc8344, 0x208a67e174fea083, 0x3797d853ccb9f6c2}, Y: Fp{0xb31bb86b25030340, 0xa9a402d5ecfcff67, 0x36fd6bd9ee36b0a8, 0x1ed1150f94a4b495}},
		{X: Fp{0x70ba221b27219f54, 0x642e8a0a12aedf03, 0x9ce96dca41c784c5, 0x7d2579a5ab913c7a}, Y: Fp{0x2f9057f107fe529c, 0x73aa24851c6a44a6, 0x7ee02d8eb379a70c, 0x7052aba846018198}},
		{X: Fp{0x784cba3b990a4c53, 0xd5d38241193548f1, 0x90d4f26f5df824a9, 0x7cbf665a0dc02f95}, Y: Fp{0x23c9994711aa1b8f, 0x83025ea8c66c7ae9, 0x7b170987827e0a56, 0x48360de4cbdb939f}},
		{X: Fp{0x057a66310d49b652, 0xcd84681b357e157d, 0x7cb4ff6b5a4488cb, 0x5438f36f51287f4c}, Y: Fp{0xc9a7435bd4ab4544, 0xde9b3a79bc0311d8, 0xeb720e8d36674189, 0xb4e054b9d9517c35}},
		{X: Fp{0x07ec8501053187be, 0x2e43ca4db9da89f4, 0x00610c14d47ab576, 0x19bc697784956352}, Y: Fp{0x335bb79e8fb561bc, 0xc7d27b3e20a52f62, 0xb7dea3d410c8bb06, 0x9f4132d9766b6783}},
		{X: Fp{0xafb7bbe983ab1435, 0x8ab06ae8fa88ba24, 0x02c2ddfa120b80de, 0x808752289af9f809}, Y: Fp{0xf1736ba5ad1bc8b4, 0x1589492b518e55b4, 0x6f353f0867be5632, 0x0146ad7efa45e950}},
		{X: Fp{0x72a01348b69804b6, 0x9082c2ed8f61ca52, 0x9a892616463915fa, 0x32684e6a78481b4d}, Y: Fp{0x32072e9ea27a9f5e, 0x6919ecd96081fa58, 0x82feec4ea56868bf, 0x595f671da579339e}},
		{X: Fp{0xd9dfb78cede7512d, 0xd8fec4bb0ff9bf87, 0x5420b4f281c5bcba, 0x9d543f360b19d11c}, Y: Fp{0x5b9fd1824607f571, 0x68d4cc2889585462, 0xf550cf0af76dde4b, 0xb3ad9fd6d8a568f0}},
		{X: Fp{0xef41d69cf82c7881, 0xb04547800e1f89b9, 0xc651c225c7f8601e, 0x2d4afe47b5b3d9de}, Y: Fp{0xc387a45095dcb06d, 0xf03bcb245b8cc342, 0x859a5c82ee8c1cbc, 0x71d852227ef1d926}},
		{X: Fp{0x8bcb022d15374578, 0xeb4b7cdd2da60788, 0xbbc0f8557dbf67ee, 0x2ff1d49430ab4aaf}, Y: Fp{0x57617c042072b746, 0x35f714ad2ede92f0, 0x2d406d3d86643a22, 0x4ca8b2030cb40da2}},
		{X: Fp{0x4c7a6459319f4d3f, 0x50c361092777068f, 0x53d9d7bb63512359, 0x6e42dfba0a6a6655}, Y: Fp{0x9f8fd0ba4a7d3ac0, 0x5c2a556f88267e81, 0x3219602fd6c6dc0f, 0xb33ee75f17989e21}},
		{X: Fp{0x6183f57556a41c2a, 0xfc92a64062b37530, 0x19582da7680a63a1, 0x2782651e273763a9}, Y: Fp{0xbf6bf1603f91455a, 0xc3cefbb9d1c5a2c7, 0x993d85cfd678ec30, 0x089a7097c342cca7}},
		{X: Fp{0x3a779b3a486758b8, 0xa69275f6ba27a640, 0xc276501e88e0561e, 0x93a83c7a25233114}, Y: Fp{0xb774006dec4fd95c, 0xb4d9883f7777b930, 0xf10c52cb7e716b04, 0xae1f083528af00a1}},
		{X: Fp{0x029615a5d4b1b1b9, 0x59c21394075fdec8, 0xa276e1fcdbf648da, 0x60b0e861409ef769}, Y: Fp{0x65a1a769f4c6ebf5, 0x3be94f05e4a1b5cd, 0x204a47cd904fb6de, 0x0aac79ee13b9dcf5}},
		{X: Fp{0x89a31a6682fccdc4, 0x3620523f523d5ce6, 0x713fefb6710bf6ac, 0x9e027a3accf3d8e3}, Y: Fp{0xd6b4d66e18903661, 0xadc686c5d1ca95c4, 0xc2a0dd8052924a79, 0xaf7ef8301eb125bd}},
		{X: Fp{0xcb96c01560c5c9f6, 0x7ce233382ed5f63c, 0xd24a06b931a00cdd, 0xaf2c69063fa8fdf3}, Y: Fp{0x60d0442179dde33f, 0x096177ff23b8eadf, 0x8ed250d722476058, 0x969370aa836d82d5}},
		{X: Fp{0xa0a493793e710a44, 0x3fb2d4057ae3e35d, 0xa3f4f94cf29ec073, 0x6b185cf016a1db9d}, Y: Fp{0x82e517128ef4f4bf, 0x916a71edfbb7b57c, 0x7781b01ad96f005a, 0x67ccd2c1eda28178}},
		{X: Fp{0x67b626b126dae82f, 0xda66e1e338d86b0c, 0x49e087e32e38ce06, 0x83383ebcb8314072}, Y: Fp{0x4d3610edd78e5268, 0x0b7069334270dba1, 0xa78e7011cb4cb450, 0x6579550d3f53ee29}},
		{X: Fp{0xc95ca267d1a5d391, 0xa7d0f3b6c39b6be2, 0xddc2cf04a28e615d, 0x0df4268d3768d29f}, Y: Fp{0x430deddb5a191d5d, 0xd1c02abdbcf9ccce, 0xb074650f1b4b1fe8, 0xa1025db844fdfa23}},
		{X: Fp{0x97b19745b9ccda91, 0xa3e98c0608c044f8, 0x7ca1e5469e9604f3, 0x80933d19c9786b95}, Y: Fp{0x93d4092c5dc30cc7, 0x6efd838a99d980f5, 0x61c3ceb7c53cbbdd, 0x34cea9e11d20150c}},
		{X: Fp{0x8a36e724c358447e, 0xfbf8270b2aee77bc, 0x250ae1ce04f9655a, 0x5555218134ad62c1}, Y: Fp{0xbeeecd87bca87bb6, 0x9f3422908ca55db3, 0x4564737a59590c0a, 0x4f25e5b83891fa75}},
		{X: Fp{0x4e0b75ceaf4a2887, 0xc3841acb67fb189a, 0x18c9578469741c9a, 0x692fab8164cee33f}, Y: Fp{0x0faf6b1c1b91ffbb, 0x2161e01d6794e678, 0x757e6f30473f2d5f, 0x269bd35f64914a96}},
		{X: Fp{0xc72faa74eea34a02, 0x6d205c88a16a7ee4, 0x78d086bcb9dced0e, 0x2d536935d49995cd}, Y: Fp{0x47db538197830556, 0xfe9d506cf4589001, 0x3410d8ae2ea73f57, 0x5573dc3766d570a0}},
		{X: Fp{0x9fecf1d9207b0f3b, 0x2f65e31712e5d7ab, 0xd22a9815a9549687, 0x3add47253a0a554d}, Y: Fp{0xa74d2d00f8df28aa, 0x5da6e8e60fcb7239, 0x39c4a859df764c3d, 0x437d0a447c006b1c}},
		{X: Fp{0x628400d2dfb8cf63, 0x4ea1be7bb1011f12, 0x87c996e101e0b74b, 0x2394c92dd50c1297}, Y: Fp{0x19db0c2ec20063c6, 0x1b3fe5e62468276e, 0xa7b5623877e88867, 0x4f290f09d8b3a69d}},
		{X: Fp{0x860173ae2d746e96, 0x836e385a29ef7d78, 0x4fe2493b84550e2a, 0x155a0074a78f4ff0}, Y: Fp{0x51e95a49b5a5cfdd, 0x84707df8c8a7b04e, 0xc687d74475b40fc1, 0x6804356c066f0c34}},
		{X: Fp{0x95ef5b0f2011fb11, 0xdc3a1b426c0f1710, 0x38ec7ea641a59d4a, 0x895d7b3155423607}, Y: Fp{0xbcf9063a18623b2f, 0x3d252f08ba051ae3, 0x5d6b5c63c5ba31c2, 0x4cc96c5f4571ff95}},
		{X: Fp{0x2207215bf497965d, 0x09f8004dce2f0cea, 0xb25938b04c90b8fa, 0x02bcce112ac016b3}, Y: Fp{0x33f85eb700bd6032, 0x40c409ddfbb8a072, 0x9741870e8fb5e516, 0x49e3a6701fa7e76c}},
		{X: Fp{0x7fecd30672ccdbb7, 0xee0abfed7207bbbf, 0x14e6c635c9a64f19, 0x559fc864279fa779}, Y: Fp{0xc740bc012c517437, 0xd0b6efbabc965787, 0xfcbf2dbb5f9b6423, 0x0c70cf5a2386871d}},
		{X: Fp{0x0eedfb687cfbbc2f, 0x669e7275238d8cfc, 0x0eee2d0ee1f10b18, 0xa7ce8935b17076df}, Y: Fp{0xb9e198c61fbe375a, 0x8845f15b979a83fb, 0x820849a6ae3fabae, 0x07b17ceb3639a11f}},
		{X: Fp{0x67bfe9a03e3f7584, 0x9293e617e2183aff, 0xae446d317cd7698a, 0x72e0ed9b8103b807}, Y: Fp{0x6b9aeb8aebcd8689, 0x9769019f64199453, 0x6c2b2cb3de587f37, 0x405c26f8bb448f4c}},
		{X: Fp{0x750d5e0904ecbedc, 0x5eb72bc43fbef77a, 0xe555b828c8b5336b, 0x8b645469493b7dd8}, Y: Fp{0xa0b441bcff99a4ff, 0x53379c7c3350ed7f, 0x54cf62906e24f2e3, 0x32d5974d94886beb}},
		{X: Fp{0x52201d5a2e85f1a8, 0xa7943c561945181b, 0xcba3604623ca18e3, 0x8ab16dc8b3c9d8ea}, Y: Fp{0xa11bf2fd209dea50, 0xb61dd1b94357e70f, 0xac5dce594f471f5c, 0x6fd4d6ba25921808}},
		{X: Fp{0xecb34837a017eb60, 0x192d511ef14c11e1, 0xb839e24d169656a0, 0x24f2d90c1dc774c7}, Y: Fp{0x9fed6bed20448b59, 0x43cc9e89524a1bfa, 0x23a654f156f50056, 0xa236f330925eec55}},
		{X: Fp{0x872f6b78f63541cf, 0x90efb732e5e7bd63, 0xdc62f65e604b36c3, 0x1020d811b94c3a7b}, Y: Fp{0xa7f756959f60f08f, 0xede55cba08fff7dd, 0x844979ef384a38ba, 0x4fd3b5fe51e25769}},
		{X: Fp{0x615b168533d81859, 0x9ea521d4601094b8, 0x23976cff9e55bd6e, 0x7d5283ee7e5c772d}, Y: Fp{0x5acab12f1677eea3, 0x9c33659fbb29aa8b, 0x358a287c30394bed, 0x6d5e7bff760bf6ff}},
		{X: Fp{0xb70c9350063545f4, 0xd46ec08f24d5c389, 0x2f98dbc16d2de6d1, 0x645af2f8036c664e}, Y: Fp{0x2eb10128efe72f32, 0x180885e5437dbbce, 0x669e32e46caf7a50, 0x606d027608cdfd58}},
		{X: Fp{0x04004fd509e0f1f3, 0x5b9f717f0c9747ef, 0xfd82e74a4f22da77, 0x56d9cc544d18dbc1}, Y: Fp{0xd0a3ca173539eabe, 0x9574506022f0b457, 0xa58573e95902538f, 0x4c36a2511420c00f}},
		{X: Fp{0x7ed2c40aea4f143c, 0xcbe961c043764433, 0x0887f82d2fbb78b5, 0x99fba8a7000a067a}, Y: Fp{0x9b235cfc5d5e6ed5, 0xd134cdfabf94cd56, 0x160d87569f6b4afa, 0x66dd206af4fddfd3}},
		{X: Fp{0x8937884ef8596afd, 0xdcd35a9d708e045c, 0xf71c6b978c80b3ca, 0x336bccce3a479f8f}, Y: Fp{0x0887b17cc321eb1f, 0x8d020cca51781497, 0x5fa6e517416ecfab, 0x6b0c493f6e16846f}},
		{X: Fp{0x843dd2c6f4bcae9c, 0xea0527c1fcba664c, 0x09a78604a1b58e52, 0x4b40337072bcb87c}, Y: Fp{0x8d58486c23df99f6, 0x3605d039cd0cc979, 0xb32c42836405a038, 0x14f3ef5ca446fed6}},
		{X: Fp{0x865c2098191a693b, 0x80e8a2076b1a2620, 0xb29842f01c1809a4, 0x465a8a97e9bda3af}, Y: Fp{0x4e4f5d21e9e998e1, 0x365678eda6d9b26b, 0xd38d7028128bda19, 0x41e03e18ace5114d}},
		{X: Fp{0x7dc366f45bae0b97, 0xe5910a0692d41b2e, 0xef4b7dc0661cac15, 0x012bfb3969bef55b}, Y: Fp{0x9c74a68e192fd4f0, 0x087cee918bc2c27a, 0x28be4ca2339b08af, 0x66bc512d7544eea4}},
		{X: Fp{0x85deb642f07734ff, 0x2515e9991def720e, 0x7feade5009ba6ab4, 0x873504616c4b9f4b}, Y: Fp{0x944a5e31128557e1, 0x7abda61f903f9c76, 0xd83ec99604e46b73, 0x481e4ddacefa6efb}},
		{X: Fp{0x2f0069ea5a92499f, 0x01df32575c362ef3, 0xcbc07ee6993ad78d, 0x2747ad331d7a0ee2}, Y: Fp{0xf7835c98b6705f08, 0x2ea1c1b4b1277cdc, 0x203f9f19e297cb17, 0x9e64be28220a5463}},
		{X: Fp{0x32037cf9667e8270, 0x8e5928cf8e47ce69, 0xf720b3bed274d552, 0x2bb5c730c9da9e0e}, Y: Fp{0x2ceb3ab299ba9f4e, 0xf52d657b55ad38af, 0x7572b599c10062ee, 0x082f8a31d6b42ae1}},
		{X: Fp{0x811ce2f602eb88df, 0x98604ed677e0e409, 0x4420730ccb80390f, 0x225afb07c2c161b1}, Y: Fp{0xde30de26254732c8, 0xc7f64aa04d8db828, 0x3757940e91cf0c29, 0x1e55070bf5aff19c}},
		{X: Fp{0x83816a8fe3189eb7, 0x099cb936ee4e484c, 0x59c1dc1fa47ffe0d, 0x8aafc2a6d007ab39}, Y: Fp{0x04523f550eb7ee61, 0x9122c9f14633d1a0, 0xf447f210f1b927b0, 0x6d477e10672bc2bf}},
		{X: Fp{0x7752867448a2044a, 0x8f0ed0aaf57a3db9, 0x14936b4b34efd7dc, 0x87f37ed6937e0a87}, Y: Fp{0x8455bf04d3374ab0, 0x4bbef1474cb611a6, 0xd87390d30c812476, 0x1a4ffbeec58fd92f}},
		{X: Fp{0x7d0f9ab42eb4bd25, 0xbdf4d57b4e1ab92e, 0xa12152a10ce02761, 0x487ca8a582f18a68}, Y: Fp{0xec1936f3b95a0061, 0x32e3ceb1578c8117, 0x715e5e391610dec8, 0x8196ac38d656bad4}},
		{X: Fp{0x3b2cd805efe7eeb8, 0x1af041e80c5d8ce9, 0x9556e3e1d5c9da34, 0x3e53d2596561a358}, Y: Fp{0xa860900cd9de9eaa, 0xc6ae0cf83a76ae3e, 0xb904a3221eda234d, 0x6bd479553f2c31a6}},
		{X: Fp{0x8dfd571ac5bb1706, 0x104829e009565f0e, 0x70ce8f7bc6ce519a, 0x46e5456a21c5f336}, Y: Fp{0x3930ace1e748b20e, 0xb0cd64c520c01f38, 0x5d0815f54a38c462, 0x4c6b02038f9cd491}},
		{X: Fp{0xb91a77900e910a39, 0x5c6366730f3d8fbd, 0x2d9fe9cef30ca2b7, 0x328fc85d971150b6}, Y: Fp{0xcd145caceac8d3d6, 0x7149717b123d8f04, 0xbd73868bbb75dda0, 0x93e47ec0e016a0c4}},
		{X: Fp{0x9082a2001b0bc17c, 0xb6feb4c1dfa22747, 0x8e7359943c8bb177, 0x49e1da26f5930d32}, Y: Fp{0x137dca86d3ab7fad, 0xcf97ca1b57efa949, 0x3be513949852a954, 0x90e1081977e7a1cd}},
	},
	{ // i=14
		{X: Fp{0x965f7352f61d4f7f, 0x7e412ff0130cb63c, 0x22db7a61f841236f, 0x8e5bc886168a678a}, Y: Fp{0xb1f70d68fd86abac, 0x913e8e1928114e7b, 0x430283b675c156b3, 0x43ed0ca1372d33fb}},
		{X: Fp{0x1db3588cc135d240, 0x593e08c60357af4e, 0x38ea13ab20538345, 0x03c26e6b98116fd0}, Y: Fp{0xc241b95a01a363a6, 0x0e283ce3a4b8d718, 0x90fe0860b41b78f7, 0x727081a850f1ea16}},
		{X: Fp{0x7f305ad77ccfef2b, 0xbf7c703145c02b56, 0xd93116dda876aedf, 0x3000112c82eaf801}, Y: Fp{0xbdbd6b32ef254c6a, 0x76ddba5e54fb920b, 0x0dae74bcb0b5740f, 0x6c24a7696a3591d9}},
		{X: Fp{0x3c7b328650317e75, 0x484ef5982c9ad74b, 0x187c2c7db9329091, 0x44229f8f743ebabd}, Y: Fp{0x34a04d745fc03895, 0x5f4cab2f38d27cd8, 0x4963e0a910da4134, 0x6b82912f45adf025}},
		{X: Fp{0xcf80f3428ecc143c, 0xbec2b028182ca0f7, 0x721b3eecd2fdbd65, 0x548a2e13e1b10e56}, Y: Fp{0x4cfeb273ff5f78e6, 0x717c65d10817dfb5, 0x7a4746c85c2784b9, 0x3c7055e24da99888}},
		{X: Fp{0x1fcdda257fd49242, 0x9b22d32ab9cc957a, 0xadd0530f19d78bbb, 0x5d5885d88bbe58c8}, Y: Fp{0x71738d38a75698e5, 0x4fe8635b0d083d6e, 0xcc0455b6b4718cd5, 0x1a4a61f224020cbd}},
		{X: Fp{0xd0f2666c51ddc2d8, 0x24de03fba797049c, 0x1cad3d7a85c0161b, 0x020c00862975bdb9}, Y: Fp{0x085b246d9e23a913, 0x220364f95d592ec2, 0x4712a61c30bf1cff, 0xb34b0d693327f73f}},
		{X: Fp{0x47b3c93fb95448de, 0xd42ecee144c45610, 0xa88ed53836276a4b, 0x232b2ec3b59d7b05}, Y: Fp{0x4ccd16820116a62f, 0x76a235d9463de0f4, 0x3a1858581ec8d154, 0x16edcd6a3e1ccfa4}},
		{X: Fp{0xd088d09414cc5be2, 0x8572c86a1a07dfdf, 0xa4135ab256c41888, 0x1d83a2ce85aeef5e}, Y: Fp{0x15c237c104bb87b8, 0x9c713d03a28cbcf2, 0x3d4d4cb2ff0cdb76, 0x77a5a44c1b86229d}},
		{X: Fp{0x908c593f43bf8739, 0x393adec04c3518a6, 0xb5aefc25354e979a, 0x5e496de39e00964c}, Y: Fp{0xcc2b5b5b2d957305, 0x1ee2d9d06ef7855b, 0xe3eaa159d375ee13, 0x0ce7143d7410cc58}},
		{X: Fp{0x3b7252aa1ea471c8, 0x547f1cd7c51ddad7, 0xf7292bd094e8affa, 0x19fdeb1cd8185223}, Y: Fp{0x8ead0cec428212a4, 0x89c144cdcfe2fda3, 0x83f9a7b1bb55e3fa, 0x97cad0d6125550be}},
		{X: Fp{0x908409a40509cfcb, 0x79824ba2bac50f4f, 0x17574ec8af04e271, 0x2058ecfc44bd021a}, Y: Fp{0xe75d7e054ca48c6e, 0x904cc72c30d49e0f, 0x02704629e57ea1d1, 0x38b19f28298c7f4b}},
		{X: Fp{0x13e6a9e35f40a462, 0xa014b9bd086bf5f1, 0x015c141dc650b9cf, 0x97a519e166005041}, Y: Fp{0x70d369ce420e4777, 0x3d3a4e09bfb458ed, 0x0e21e1eeb4913746, 0x51d59fa188a16d0a}},
		{X: Fp{0xb9c0a65703447872, 0xca1bb838075b97a4, 0xd54076939b3b16e7, 0x076cd5f9320a772e}, Y: Fp{0x7987a51694529dcf, 0xbfa153f35906ca11, 0x47fb3b066a105255, 0x0aceac75118aaa08}},
		{X: Fp{0xda3bdbae92928385, 0xa80278a84e25eb39, 0x3981d82db7e5c4d6, 0x24434dded807281f}, Y: Fp{0x5ae6116a7fc61487, 0x18cbee1813547b37, 0x2c87ead65605d867, 0x24f2636d34d1064c}},
		{X: Fp{0x346a066c78deb586, 0x234f039c74b1a8be, 0xbab2adb8c630f93c, 0x5a625e45d99ea89a}, Y: Fp{0xeb9cf27df331279b, 0xcbb861aad8f2606a, 0xd89821328e571d06, 0x764407db8c5a4e0d}},
		{X: Fp{0xf999dbb563c35698, 0x89f1124a0c707e49, 0x74ccd3318aafb3d6, 0x802093892aa5e1a5}, Y: Fp{0xa6cc50de85f6f6a4, 0xf949e57880cb1d99, 0xf3131a24ce33ccd3, 0xa0f2c8a28304bb8b}},
		{X: Fp{0x2d78c7263a26877c, 0x88b97aa8f1a97ff7, 0x7e3dd158f50a53b3, 0x05492503ca25fee1}, Y: Fp{0x7cf34d6dde8f8fcf, 0x7fd7964ead67288b, 0xed29c99517c4114e, 0x6a160d77c998efc0}},
		{X: Fp{0x93cf6448e881ff72, 0xa4276e2d627f24f6, 0xf8bd8aaed7f37259, 0x09c0b561a819a0ff}, Y: Fp{0x3c7aea05fd7aca26, 0x5e642cafc49bef30, 0x3eea269dd62ab01b, 0x0dd1dc55a4db4f8e}},
		{X: Fp{0xab3ff1c2b19db0c9, 0x0bbbc6741db2a1bb, 0xd93e3f444b9e440d, 0x67f1e97ea5509d38}, Y: Fp{0xc1fbd10a39803442, 0x8db8134299c67465, 0xe432c0ad70d98a07, 0x7163cfe5d8622671}},
		{X: Fp{0x5d22fe974d0ab33f, 0xe80051d6b77d1cf9, 0x072e2e9a4e71c246, 0x61ca5b1191cd44c7}, Y: Fp{0x5f34e61552917d0c, 0x9ee080f4dd9bd2de, 0xfa935c69faa96076, 0x075e01bb04c5b5b8}},
		{X: Fp{0xc059e0bc5aecde6f, 0xd4a38866a3d5f808, 0x60ded78c0672c1b8, 0x95813b72e24404ac}, Y: Fp{0x5bccc350caa39cbe, 0x6fd4bee10cda7a7e, 0xc2caee2f91628155, 0x2be8466b5efc0acc}},
		{X: Fp{0x5e24fd2777a93679, 0xffd1c1c73d5ad3fb, 0xec0b5d449ec57b31, 0x2920ea93e457f6d5}, Y: Fp{0x663eecf4073f1069, 0x0132af6a0609052c, 0x739b2acb9338dff7, 0x90aa39b37ed34bce}},
		{X: Fp{0x7c17069864786515, 0xc97b8df97138fd8e, 0x0d720d9dd315a1ed, 0xada809a48e25fdb0}, Y: Fp{0x2e35849f26054f6a, 0x3563433f6c5529a5, 0x9f00a79831676b54, 0x2ff74f6e79539ae9}},
		{X: Fp{0x0537a70f85f1e0d9, 0x62ff68a953dfca89, 0x1158865637f1387b, 0x4cd2b866a1c521ec}, Y: Fp{0x93bb8e823dd215e6, 0xfdc2f8de8e677277, 0x6dc4665998f98408, 0x80603e624b055558}},
		{X: Fp{0x6041dba6723c21d6, 0x556e2d4dd189c256, 0xb5749d9917ab1aff, 0x86df4997370d88d1}, Y: Fp{0x5e329133aef5ebb8, 0xc0712e4d18c67fb5, 0xd021d9b1d1c3c3e2, 0x0c6320b428b17c3b}},
		{X: Fp{0x22fff0432466687c, 0xc7c5796a42f2b7dc, 0x3ff979f465525569, 0x4536f83b15cda204}, Y: Fp{0xc18f9d3c04d022c9, 0x06dbafefc0870a61, 0xc21c830a2171bd1f, 0x7f036c74d1013e13}},
		{X: Fp{0x4ae668aa007fb601, 0x3d16ce0a29ef46cf, 0xf1096ddcbcfe67bc, 0x6a315cd93a0c5014}, Y: Fp{0x5df292be958873a3, 0x92ca3a3b82be58b1, 0xa8ecffcd19e3bbfc, 0x5decb841faba6961}},
		{X: Fp{0x7ff5a6871d714de5, 0x869e2cba9d30bd06, 0x796ac1f3257af128, 0x3fe1b5e5cf69ee62}, Y: Fp{0xa0cffa1e1eb49e92, 0xc561d5c4592bd2a2, 0xc7d3b1d9611e69f9, 0x6ae9fff3620cced0}},
		{X: Fp{0xd489dbfac358889d, 0x6732806fc97fd0c3, 0xa8687881d7984630, 0x67cd5be3ad274a66}, Y: Fp{0x7766fc36de0e483d, 0xf06cc6b3d94c1a5c, 0xc98a08d35f01de72, 0x710c666e9c626104}},
		{X: Fp{0xa76193225b948dbe, 0x59773f628f4dc4d4, 0x8fdb22e79f27a5c1, 0x0e1bed23b0cb4449}, Y: Fp{0xdb38a0a1cd756e67, 0xae251482da93c8d8, 0x427b37b6e1f6ca73, 0x088986a764a3586f}},
		{X: Fp{0xd102c033bd7d0bdf, 0x2ccbc80edc1a5031, 0xdb9fa2fc79b198cf, 0x3c7c22fd341659f2}, Y: Fp{0x3c06cb6b2ead4911, 0xcf68b2d62c0be35f, 0xbde6076ab6c04870, 0x5bac3b1442a71984}},
		{X: Fp{0x6d1e12e1656b09f2, 0x8621ae5a55089397, 0xa9e2da614807fe75, 0x71aad540c2b9050b}, Y: Fp{0x5158a7c5bc934918, 0xc0d3a9a68328b9d7, 0x3191e46f6dfd7659, 0x574816e64fe2f69c}},
		{X: Fp{0x576fe765276ed299, 0x9cae97501e2f089d, 0x8fbef6558130a606, 0x2b3a6b02c19c92a6}, Y: Fp{0xa08b836dbfd03085, 0xf5baea324f22f749, 0xe00ed037b2d66ef9, 0xa3c81d221a6262c4}},
		{X: Fp{0xd549e3a56280a139, 0x5f57c21fdbe4b212, 0xc6fd4b643a30dd7f, 0x3ad849653d2c988b}, Y: Fp{0x71a17edc309613db, 0xe95c978e6608baab, 0x921127ae2f043701, 0x51df3374ad6fb539}},
		{X: Fp{0x5ee2f8a3c9944b0d, 0xee3a2728c19785b9, 0xb05795d73c7150df, 0xae0e2e7929ccc070}, Y: Fp{0xe2a766aa3c4f5e11, 0xe6655401a1c592ea, 0x1af39b5552f8edff, 0x21c5c4d3bdc26974}},
		{X: Fp{0x2d5de84b6ac25400, 0x92685adf3ffb9864, 0x318262db22fcc6e8, 0x79313a21ce0d26b2}, Y: Fp{0x517c3b36358cc2f4, 0xd6adf2bf3bd6ea5b, 0x301e90e8fdaf4887, 0x65c6372546ccab0b}},
		{X: Fp{0x599ba774cf02e974, 0xa9380d24ce0fbfa6, 0xd15b7936835e514c, 0x929149d3084c67c0}, Y: Fp{0x7b4b7aebd95b6bc8, 0x563498d8e156228d, 0x956ff042332ab9cd, 0x61c1548b097e02fe}},
		{X: Fp{0xdb6c6d13d273b879, 0xcc00884420b85171, 0xf00a0221fbd0c3c9, 0x3f0e3ebac5897334}, Y: Fp{0xc6110f1788341431, 0xc83c75685340502c, 0x79be94c4a4a1c1da, 0x5ce4dbb29f1e52fd}},
		{X: Fp{0x40300a34e2da811c, 0x2bd7875945f66f48, 0x1da40d9890e69468, 0x1ec68b2a3b702cfd}, Y: Fp{0x0dcfd4ed97728d2d, 0x76450395d4a0bbae, 0xf058415bb1919d69, 0x6b8fd5fcf87e8996}},
		{X: Fp{0x69cdea93459d45cc, 0xeacd7d4ed72c36eb, 0xf72643ed80b00d87, 0xb5888747eb7134f7}, Y: Fp{0xfebf7eb9f52be8f8, 0x3a4493fdd17d7b17, 0xc66f99bfcbf0acd4, 0x8de61fdaa3c5d382}},
		{X: Fp{0xd43d24a073e7a07a, 0x1c7660e071e5bb76, 0xed55a03a498c2ff7, 0x808f962fa9451718}, Y: Fp{0x4beb09e05b5485fb, 0xf17c616183f81201, 0x1bd42e64ee5ad3a0, 0x5b5c9af74da4e2fc}},
		{X: Fp{0xd0b8044943cc21fe, 0x545772940e81e4fc, 0xdbd217e16a32e8ec, 0x5a2d9e933f3a1726}, Y: Fp{0x471e43b84a9a75e7, 0xba0d6fbda11b4ec2, 0x7becc0b112ba7171, 0x76a9c05bc7486ebe}},
		{X: Fp{0x708cb61237440205, 0x7b570d784ce1518b, 0x36639328cb16025f, 0x485d3f6eed18ec47}, Y: Fp{0xfb2064688f710fa3, 0xfc5f3a4b0f28b0ac, 0x496a30e65c5c3ecc, 0x1d12713404a41ecc}},
		{X: Fp{0x70fff3a971403c94, 0x75d8128661ebb2df, 0x2833f2f0b76c446d, 0x26a3a05a3fc4ca63}, Y: Fp{0xefca059ccccba81c, 0x5476b9a50e8c2f81, 0xeeccad99f33f21c6, 0xb31e5efdf25b45d1}},
		{X: Fp{0x2710aa3274516853, 0x7bb52a5ec520a1ca, 0xdb56e1d34cb263b2, 0x7242a407d5cf1e0d}, Y: Fp{0x9d7e6fbcec44f595, 0xb2d406196acb2991, 0x59eeeaa6e99e9edb, 0xa87aa60f47d70854}},
		{X: Fp{0xcc38f6e5eb9e4c96, 0x74c5e47335aa31ab, 0xc2b5331c00681dea, 0x6064822695a4aff5}, Y: Fp{0x5f1462050a1de16c, 0x5a84e183ac64d0f9, 0x16a8f66707b4ad79, 0x3c5ba6f095afe1ac}},
		{X: Fp{0xa525d21f0fc37ab8, 0x42ac628f41093a1c, 0x80d02e7cb4009030, 0x71766d294f65176e}, Y: Fp{0x95b12f4dbfdb7fc0, 0xb2cd7c6697e9611b, 0x01c46bea34591551, 0x7a07ac5f971f5d1c}},
		{X: Fp{0x4022f2abefb68e0c, 0x8006c6730f4ce7f3, 0xe0019029e86d3cc2, 0x3bc8e40af10e3190}, Y: Fp{0xae36d9666e83418a, 0x43a2c05216c6ecb9, 0xd78b318b0810bc43, 0x9497f5d2ca313ece}},
		{X: Fp{0x36e05ec14c024317, 0x1c7dd6f49fcf8be8, 0x1410c0335965bb0d, 0x5ac11a9bbadda097}, Y: Fp{0x01c451da7f2175d7, 0x50a966f77f006c3f, 0x208f1bfbd78f1533, 0x90daed5efe361235}},
		{X: Fp{0x7cb640d3afc7af4f, 0x6fe463618ab5fefd, 0xc971e1c8a6f39992, 0x380fe0aae0fc6ee9}, Y: Fp{0x2160263b4105246e, 0xaace1f0b0f223282, 0x4784d2de057a38ee, 0x62237212cede41ab}},
		{X: Fp{0x1b543da172af3c48, 0x3225e8b5fefa47cf, 0xab0d2ba0dd512f33, 0x0c665c50a8fa0119}, Y: Fp{0xaa9653dc25b59c5d, 0x76dd18d54f2ef4c3, 0x99c1647c4ced882c, 0xb5f8955a4260ce18}},
		{X: Fp{0x7db173e7551c77b8, 0x5ef781a2590d68ed, 0x6174963e6903b1b0, 0x1a36e3265e31b485}, Y: Fp{0x6eaf3c35a22d7fec, 0x20fac2ab5692202f, 0x0efa860b7b294fa8, 0x66359ea437de0bb7}},
		{X: Fp{0x0e7a743c8cc7173f, 0x96d7fc83497c7086, 0xcd20bf133749d09d, 0x4de907f950eeb6d4}, Y: Fp{0x587b8de11a13645e, 0x52cca1eb1e114452, 0xea67243c4f0ed6cf, 0xb0e5dc9e61742fb4}},
		{X: Fp{0xc5b560321ef794cf, 0x375bf3f6c190b074, 0x626a8c9c4b232203, 0x8b666c8d402047c0}, Y: Fp{0xa0ea4027f11ab156, 0x86b137f7344fa87b, 0x0082aff7aae09109, 0x1b5a9a0c160354c0}},
		{X: Fp{0x9b188156afdf7fd5, 0x1ae3d745f272c31e, 0xe0884f94ab87875e, 0x6e5e5b266455802e}, Y: Fp{0xbd1b2bc661f7a43a, 0x45e8ec5873533fba, 0x03e599a566a47cd5, 0x840875cf15886383}},
		{X: Fp{0xc6174417e42c96b1, 0x7862c79478ca8725, 0x1c8764d99d44b9f5, 0x4e702fab53d5d8a8}, Y: Fp{0xe02f3114ee31061b, 0x1f0deaedb7f02e4e, 0x37eeef79d17c316a, 0x3417a4685781b0cf}},
		{X: Fp{0xff27fd09d8964308, 0xb737fe56ccc566c4, 0xe6a5cf41912a1648, 0x7bda8679b60c7ad0}, Y: Fp{0x8ce3d5a11228c533, 0x9cb4aecf10c05036, 0xbd1ee9fc74495165, 0x72fe93b61cc0dfc5}},
		{X: Fp{0x3dfc8020b6c579dc, 0xa44c8104a9f11bae, 0xc47fd2804b1c97a2, 0xaaea1f9fabc97f94}, Y: Fp{0xb486333a7ad1f645, 0x3c84e3cb24c0a8b9, 0x54a109a67d8dcad9, 0x7c44343f22856f3e}},
		{X: Fp{0xfcedabe10498d602, 0xbf2bf32bd0b905c7, 0x98aa4a13ed60ebe8, 0x2ccae0b667dd5c1b}, Y: Fp{0xa589ce255eb1ed48, 0x83217cdae688b85c, 0x233bef130524facb, 0xa3b8be70862cb651}},
		{X: Fp{0xb550a1ed43b8f508, 0x23b8f10ba19b070d, 0xe94c5034bee311b7, 0x2123ee3b16c76075}, Y: Fp{0x00defde272428064, 0x9ff28be0f0daae66, 0xfa72679bee07a699, 0x9bc083950ddf41f4}},
		{X: Fp{0x3aeb9c1c6e89a1a2, 0x153b63f205f2dfd8, 0xbc0c21f7423f1db0, 0x83c7dccd347506e9}, Y: Fp{0xf99c42c73324ddfe, 0xc7693763e429b4bd, 0x875bc6f9d99a8f0a, 0x9a53b7ff9f1d74fb}},
		{X: Fp{0x3595e57b296b955f, 0x9d7b27868645539e, 0x4e4ed4caae5b64af, 0x17f92fb7391c415d}, Y: Fp{0xec4d66807f94259a, 0x1d3acaa67389b6d8, 0xa265a73fdb135d43, 0x0fbbf292b9f3fb09}},
		{X: Fp{0x222a51218d62abf3, 0x95c17ac2cfb7eda6, 0xfb42e6e9754c1fdb, 0x1ebcf74764d417e1}, Y: Fp{0xf84c9ee54f5d9f3f, 0x84eff44672631c06, 0xea45968416d82626, 0x2b75185187b964e4}},
	},
	{ // i=15
		{X: Fp{0x72fd2de6d9031b2d, 0xe9de8011ae160dd4, 0xe05366bfe6f35430, 0xa5b44755c8337edd}, Y: Fp{0xac3eb29b400d3de3, 0xe75ad319b357b226, 0x84d1517ea074f1e4, 0x4baa269001404d1f}},
		{X: Fp{0x814201063fc12913, 0xcff8c160035bdc29, 0x5807610d1ddac598, 0x6ebce94586a5c78e}, Y: Fp{0xc2e90fa4ccbb5292, 0xc8d89ec203bbdebc, 0x5bef8f4560938b99, 0xada132cdb1d0b1a8}},
		{X: Fp{0x128a9b9b49ebe0fd, 0x53c5b580eec1a3f3, 0x4e2e9977132a3520, 0x815f197b11f36823}, Y: Fp{0x7a4760af93f27754, 0x602cc08e800cddac, 0x8c20215f8ac15279, 0x523f7d88ea366ece}},
		{X: Fp{0x20a85aa00d71ede6, 0x080714d6093a984a, 0x5d68c84505f05778, 0xa42c466b9b9667b9}, Y: Fp{0xab0a0c11cd2d2eb0, 0x6d3d1ae38a22af6a, 0xe981495b7a01b328, 0x34d2c1554868301b}},
		{X: Fp{0xf471b086f8b40779, 0xd16d9ced68efa562, 0x2288bd0ece6216e7, 0x85521bc318f6ac60}, Y: Fp{0xe40d2859320e096f, 0x4bd20560b38a64da, 0xd0fca650c3cf8ffe, 0x88e42fc1d9cb77e2}},
		{X: Fp{0x6962443720700a48, 0x36508917f50d693a, 0xe5b8be24cff3ce8f, 0x7ca692cb592eb7c7}, Y: Fp{0x2aa74a2ac08dfb00, 0x5ac56dc9ce14b7fd, 0xc1d2c48ae82aec66, 0x9ab15188b746bcb9}},
		{X: Fp{0x05a9eaa0afb0aa0c, 0x05038a2f16cccdfc, 0x03ff2ecba1ca5ddc, 0x2ac1c05b1296023d}, Y: Fp{0xc2df2a8857fb575e, 0x3062645a0a9bca18, 0x9dbf645fb74dd69a, 0x2fc7926e309f3fcb}},
		{X: Fp{0x423a16bf9aee4a5d, 0xabde621622923fbd, 0x0da761a398b1840b, 0xb3df77980e30faaa}, Y: Fp{0x221bc8dbf09852d1, 0x5dbc67b3b8278580, 0xf6cea1125ee53e5c, 0x52a50e0008abaf06}},
		{X: Fp{0xf9ae044071af42de, 0x3c7ab18bce274552, 0x593f06d7e20d7206, 0x996313f2fc1242a3}, Y: Fp{0x507c250dd50f3c2d, 0x130d772df04506d8, 0xaa491557c87fd41b, 0x2ef4066baf426d60}},
		{X: Fp{0xcde317badfc5b54a, 0x53e9e8d079ca70cf, 0x914c6327e5f6d7d1, 0x23144c0659f4f2b2}, Y: Fp{0xacfd1b35d3aa912f, 0xf018095d5d721ace, 0xe8e2e89b897b5651, 0x2e2d69731facfa81}},
		{X: Fp{0x5638cc5906691932, 0xe0d415c79eb15cd0, 0x13e8d7909b26c7d6, 0xa5a4057f7bd95da6}, Y: Fp{0x95ac04f3ed0333fd, 0x58f804bfea872601, 0x12179b5c4ab3a6b7, 0x2787067508d90a7a}},
		{X: Fp{0x8541c9b066f273c2, 0x19e17035336b9227, 0x0b6d90db53726be1, 0x4495c6ba35a88a79}, Y: Fp{0x8fd17a081281778e, 0x18ee4f2fa25e6467, 0x760ee7025c77ad1b, 0x3b34269642dd293e}},
		{X: Fp{0x29a70e0d7d664694, 0x303869636462e86f, 0x13696b1ebd5cf894, 0x6d47d984a2084965}, Y: Fp{0x2dd79be47fcd9595, 0x5f83a370c9a622a2, 0xe181a1536f6070e4, 0x33e30e3cdc338ed4}},
		{X: Fp{0x4f1afeaedeb451e4, 0x921e74394c67c2b0, 0xe0f1ca5bcc89b963, 0x8439fac4cfbe58d5}, Y: Fp{0x81ce044eb0f56f7f, 0x94e533405ed2017e, 0x3f2949bb661b6017, 0x2c2e64440253d132}},
		{X: Fp{0xb9b8a771c0e80cea, 0xc0ce856f8f3696b8, 0xc81cbe2b57a00675, 0x35b083ff07f34261}, Y: Fp{0x9f7eed26ecf0eb20, 0x0d9e52b13c8d3007, 0xdb9cc713d2f8646e, 0x1c468b947bc1e493}},
		{X: Fp{0x3dfd738d55a4107d, 0x92f2208bc15636d6, 0xb56d5bbac68d6d79, 0x617e398b751fd74b}, Y: Fp{0x2d7df1a4380341ba, 0xc028f58609954876, 0x1f32294a883a1017, 0x12e595bb2ed83349}},
		{X: Fp{0x7576d7b547c991b8, 0x0bdf7ca37c10bca1, 0x166313d0b615cadd, 0x8b4e5da03a2de922}, Y: Fp{0x6e1b053c753561f5, 0x219195d98d3607b4, 0xcc7a587d2e378ce4, 0x6832ee823d9ca9c0}},
		{X: Fp{0xe25dcf0fca08de2d, 0x91727a329acf1245, 0xc247f64649d6ceea, 0x86ebac8616057ae7}, Y: Fp{0x5f502d12fb103e19, 0xb09d078a408083d2, 0xd9fc27ba891bba64, 0xabdd53150f7dcc3e}},
		{X: Fp{0xac268ad8215992d3, 0x860c6ca8b51c76be, 0x42a89a82fe36f541, 0x94d622fb9667083f}, Y: Fp{0x50fe185fc45ca67a, 0xd023f6390d3d2027, 0x90c61479e3588e07, 0x070c8951b653bf5a}},
		{X: Fp{0x27f9198808f9a4cf, 0x6f69a0bd9b961a09, 0xf2bdddb91e04ba0f, 0x3fdad4d4342bc6f7}, Y: Fp{0x5ce05b668c7bf64e, 0x0938eba2f284e8d5, 0xca9a893f2268924d, 0x33137142e8e17959}},
		{X: Fp{0x114e5b8f248d444d, 0x0b2bc1ba1cf7145e, 0x88ea53f327e0206d, 0x5712b16580416bc0}, Y: Fp{0xbcf0bd7ccd1ec988, 0x979fd31a0164ffbf, 0x3afda875364e13a7, 0x268de3c5efdbb4f1}},
		{X: Fp{0x4e7402013170a05b, 0x13b18320983398d9, 0x1d07753a566cc9a0, 0x53060591b4f92634}, Y: Fp{0x86b8c9220506d163, 0xa9e4618c58ddee19, 0x791bc1c382977119, 0x44f2c104ca958934}},
		{X: Fp{0xf07da437a4b8e3ea, 0x41adca412638c877, 0xc04e4bb4f1df6fb9, 0x553fe3e80207dfbb}, Y: Fp{0x0b236eeb005dcf57, 0xf78fbc634a2694a0, 0xfc05a2d8a30dabe7, 0xac1272b2ddc958f3}},
		{X: Fp{0x83260c4ed7cac812, 0xe0236e635d7a6b1f, 0x20890f797e79de62, 0x10fe44aaf25d2c6a}, Y: Fp{0xb4864f3a80b00002, 0x2859e88f7384eaaa, 0xd10ef4293b08abed, 0x9e5d82719ac8090a}},
		{X: Fp{0x95362ecefd09fb72, 0x62ecba043bbfa32b, 0x17c5c2509d7b74fe, 0x465461ef149871fe}, Y: Fp{0x0ba914019ab0a2e5, 0x3d317dbee5476504, 0x82e367eaaab133c2, 0xb1c3c120da995ef6}},
		{X: Fp{0xc905d7b5e9f21413, 0xf4ce638c5acd7dd5, 0xe09c4b98c4ebef75, 0x58952c1addd270eb}, Y: Fp{0xc8745f9f65205560, 0x0436ac05deefddd6, 0xcba360308eb8f632, 0x11470646698bdcf1}},
		{X: Fp{0x17978449b8c74782, 0x9f8e9d9c89e2ba31, 0x2eb1125cb52b38a9, 0x81488415621c8010}, Y: Fp{0xefb8375260d8b5f0, 0x3ee5bae2983f89db, 0xe3a36c6534244ec6, 0x007fe4cd760afbc6}},
		{X: Fp{0x23e8c376c27c606c, 0xd09c43dd69d0a175, 0x0c8f398b803f054a, 0x348595f90f8dceac}, Y: Fp{0xd01bb98d810d08db, 0xae5e26095eb5cffb, 0xa374c2c91acb6d30, 0x8f1f0ddaec5d1633}},
		{X: Fp{0x78bdd177d5bbc34e, 0x54a5c74792c4de83, 0x0fcb0b87b46e11e6, 0x33b7968fb7c983b4}, Y: Fp{0x4141dbbefa843a51, 0x28ea26ef401674ab, 0x31c9de1195f13232, 0xa1f36926df47cce9}},
		{X: Fp{0xa3d1c1d80ddf0e48, 0xaaccca4bdb8affbb, 0xb8d58444760e8679, 0x9e8e4e247d5bbca4}, Y: Fp{0x979648bee1a9ed8e, 0x443a9060e57c9389, 0x650019ef07435854, 0x6682c88dd6fe45a2}},
		{X: Fp{0x8e974e804f05f588, 0x5ae039a5abae5ef6, 0xf453c5169e78c289, 0xa9fa0de055eb78ee}, Y: Fp{0xf1038039122b1fdd, 0x4133a681e23436d0, 0x16bf28fb5676bc6e, 0x69705060adec2b40}},
		{X: Fp{0x3ed88952a9e1228f, 0x15edd07104f0707e, 0x418f35d7cf61614b, 0x16ad3f32190eae66}, Y: Fp{0xd9a1c970ec846ec1, 0xbae8cdb26162a6f4, 0x385447f50be93848, 0x38a5335b1fd1ec6d}},
		{X: Fp{0xdc1920adee68007d, 0xa2dbadccaf71eb13, 0x029a01be5d7d520f, 0x395e4519f26f78e4}, Y: Fp{0x93cbd5cbc557307d, 0xb3539eb89b021c08, 0xbdcace298dbd1dcb, 0x13658cc47785378a}},
		{X: Fp{0xfb3dcf943a3b3064, 0xb1ee3ad1fb77e1e1, 0x37ee65808941da9c, 0x629044ed86650c08}, Y: Fp{0xe3f81ef3f95a1923, 0x009b4ee5a5943801, 0x91d8d9350a127bf4, 0x092d85612a5e0b22}},
		{X: Fp{0x826135d23eb079e8, 0xb245db24c0540448, 0x8e5385a56741f97d, 0x7f8e43f3f7b3f319}, Y: Fp{0xffa3d31136844ded, 0x9d8f5617217f7c1b, 0xe6799dfa20d30cd3, 0x6aea04874708ac1a}},
		{X: Fp{0xab343b827d1af8d3, 0x86a03525524145d7, 0x48cbd6b82ae81e1f, 0x012a9a0d8977c1ba}, Y: Fp{0x9b82954675b814ef, 0x2ee8b8f8f76af095, 0xe1d34e06f8f9adab, 0x989387023eebe98a}},
		{X: Fp{0x391e097ae72fcdd3, 0x78c9e40205598d52, 0x7110a81770693ee2, 0x8bd9ba75a0f76197}, Y: Fp{0x799c4f38c1c63f16, 0xf314cd352fea6e2d, 0xd07aebe9eaa0ca43, 0x6af1147eabb88b7f}},
		{X: Fp{0x4d73e1d4be335d5f, 0xce815ba2cee4698f, 0x0544c01678652f65, 0xb505926c32ae33e1}, Y: Fp{0x7f05141cf0f42011, 0x76efa5a724b54a4e, 0x00041944b335723f, 0x690dbe24c78b8ffc}},
		{X: Fp{0x4e3d7b9451e5feea, 0x99f47f323304638f, 0x720ec95112399f59, 0x42f30da85b0e55bc}, Y: Fp{0x7b7575669979a081, 0xcd6e9e3b5542fd8d, 0x0de5649c5880a9db, 0x471000e7fe079b84}},
		{X: Fp{0xf14470f54ba1334d, 0x988f4e89ffe3d491, 0x95759f565b71d9c8, 0x2883e959d68de232}, Y: Fp{0xb832fddf7ff72e3e, 0x0b8a121643200e9a, 0x8411a8330a480d5f, 0x684d4f2f1e87255b}},
		{X: Fp{0xadfac8589a35c13c, 0xfb9d57a0003e76c7, 0xba3192a13d3f4ab2, 0x2d2064d2f862e209}, Y: Fp{0x526f8cf9b1250c30, 0xc5714429d65bf058, 0x0a0091a51ab38644, 0x2b9dc14a8bd6bad4}},
		{X: Fp{0xa385d15a441609de, 0x7cd3ed5d6a2843a0, 0xaa319294bf5f7eb0, 0x62f7d7c0a4d2a0ba}, Y: Fp{0x335b6a2c58081f3f, 0xd9d2479ebe003e02, 0x566a8d4beec4fd8e, 0x8394f7e7eb4753a8}},
		{X: Fp{0x11e4cb33d1944753, 0x07dd6fdd49243a62, 0xfd910d42b4e06924, 0x58696581995ce8a0}, Y: Fp{0x2ed7473af9d798a5, 0x4203b172ccf50d4b, 0x3a7ce0109c0920dd, 0xa9f10c7aab18d2ff}},
		{X: Fp{0x6f8b147776c86d16, 0x3eadaf3e1ea9ea0b, 0x13c0651bfe6dd57b, 0x0af46435d0995e7b}, Y: Fp{0xd295d02967308e6e, 0x64f4e228a9e307da, 0x0b6ca315ffc7f684, 0x8d6015669b02adbd}},
		{X: Fp{0x72866ea5147bf242, 0x7d7839d433f3b375, 0xef812030cf1c503f, 0xadd8fc5c2c1bc0b6}, Y: Fp{0xdebd039c30e82b7e, 0xf00551c784efc900, 0x66ea3988a40bd9c0, 0xa2dc54277f23b679}},
		{X: Fp{0x128894ddd8327acf, 0x835c8cce917788ee, 0x51306f9deddfdaf6, 0x6f49e9bba2b8a4b3}, Y: Fp{0x4d93ff3155406473, 0x42281b5b20eaee8a, 0xe6bb1b82905eab4a, 0x7487bce7d532bc6e}},
		{X: Fp{0xeeea141cda91ee78, 0x8f7af80155dadce8, 0x5044aad226cf8cb6, 0x6d9c8b4f51c771d2}, Y: Fp{0x684ca68c7d0df488, 0x918e919ee540e59a, 0x1b167ffb051138c8, 0x0fa24bb23e572975}},
		{X: Fp{0x55af0fe6835ddbea, 0x6443c055c1ba9c2c, 0x15469be929f86740, 0x4e3dcb3f804e92c1}, Y: Fp{0x211da6160bcc0bad, 0xa64b88276476aae4, 0xad262f8807fbd0f9, 0x2a776167e7f746d7}},
		{X: Fp{0x13c512a90d451bec, 0x7a0e7f76f9ec2de6, 0xfe265e46ce502d88, 0xb465694c24c30cf5}, Y: Fp{0x6f17eaaf2917b734, 0xc6e185bdc034b9c7, 0x09aafbffd941cae1, 0x1847e6a7963c291d}},
		{X: Fp{0x953f98b9a7fb084a, 0x553c437f4287f91d, 0x2476f56394525558, 0x601451fff501b0f9}, Y: Fp{0x4a9cc6dcb92829fb, 0xb6dbf87bac13ddfa, 0xec5be5bae01a6a09, 0x445da9ea1d716ccc}},
		{X: Fp{0xc1b88b8c40aa6f5c, 0xd61bd6a3db975f39, 0x40906afc0953751e, 0x6e01f3c6776ca84e}, Y: Fp{0xbda8cef09b32135f, 0xdb06a04b8a088bb4, 0x80886af2d3292510, 0x2f83275dbae34207}},
		{X: Fp{0x3b39c2af3e7f5581, 0x2ddc8e28186ae72c, 0x658eb8f7907883cb, 0x5816294d964f707f}, Y: Fp{0x1ab96da4f8ee1428, 0xd8e11c05efad8d21, 0x680539fa0daf0eb8, 0x059fa21ce9ab8df2}},
		{X: Fp{0x7d8d4678ec92536b, 0x385501a5a49d29bf, 0xaa2236da76fb388c, 0x67f0c9cf23398623}, Y: Fp{0xfaa8ca8005b030a2, 0x355008f744720a13, 0xf2d064123b1bf1a8, 0x2aad5ac738cd25c7}},
		{X: Fp{0x7e1c8ececaa9887d, 0x5d136db6547f1586, 0xf4d72df7dc9f571c, 0x04f6ab7c63231082}, Y: Fp{0xf0da24c5b18c4dab, 0x194fe63ddc141808, 0xa3fb4634bb14448b, 0x8e313c4f09826907}},
		{X: Fp{0x2fd2d982ac427cf3, 0xa51f8d6d0bc27888, 0x997c5907a8492536, 0x55b64f597d9ccc44}, Y: Fp{0x36628f6493eb4a78, 0x091d7f78f8d3485e, 0x28ab77e7a1b66781, 0xa45baa9d0931c222}},
		{X: Fp{0xdcbd1af6810526d1, 0x85b4be91b1e8bdaa, 0x9b68f7203a87a659, 0xa5aed963d7892686}, Y: Fp{0xd054a25b62d78560, 0x5d8394f870fdbdb5, 0x1a7f5e45d56bc6a0, 0x1d51186a702c92f5}},
		{X: Fp{0x2e026014be89fc41, 0x5cb7bff893cffeff, 0x299cb37799a011b2, 0x859d3a31098b5da4}, Y: Fp{0x593c19bb31105aff, 0x474b793e3e49a1ed, 0x072bf82c1b824c9e, 0x7e67837b78a5d368}},
		{X: Fp{0x11c73fb323f8590c, 0xa519a96375f14e5e, 0xbe0a13df3dd7addb, 0x112704b0150fdac7}, Y: Fp{0x3ec77c4cc1ba1de6, 0x15fc06ea521b7f34, 0xf3a17cce098532d0, 0xa466aaf7bb3364dc}},
		{X: Fp{0xa024ef07240331c0, 0xe14c511191a6b22b, 0xf14549c893d1d157, 0x561e93410bc92e46}, Y: Fp{0x199d7be364d373e3, 0x6f49abbc83d6de5f, 0x4408c71669a56f6b, 0x486b0fe80424b60d}},
		{X: Fp{0xf1fe12aee6ace684, 0x9e2ba96e1ab56ccf, 0x3a950de825f663a0, 0xb58f32957a760882}, Y: Fp{0xd6fa2e17ded204f1, 0x095a1f043a1cbc6f, 0x0afeeacbd1b75f30, 0x60f0910705f4f696}},
		{X: Fp{0x0f8582488d23e685, 0x5dbc3f34a05d0984, 0x08df0a970c9feca4, 0x9a1bc5b8561d4b0d}, Y: Fp{0x09eec7b6d645530c, 0xda7b7ca8df9f1812, 0xde0be79be8038527, 0x3624f918b6bf70ce}},
		{X: Fp{0x05ad19ed1a111d24, 0x95e98cae626fc4b6, 0x86494c53a07c5a87, 0x9eeec3981f2d5d77}, Y: Fp{0x7dd2b4e470bfef62, 0x99423f5344af138a, 0xcf7370b52ceb4d4f, 0x8932d097625712f8}},
		{X: Fp{0x506792360abe7a63, 0x694b1a46e0ee15a1, 0x07da5f3e9b883309, 0x64e2e5b681248f15}, Y: Fp{0x52d2526df77c2079, 0x65cae6898ca07a5b, 0x7db23eba8588ad53, 0x5050870b7f317b53}},
		{X: Fp{0x0f3e5cfb0569738b, 0x8c58f16a4b72e65b, 0xb24c84ab96e51090, 0x7b21b201ece1203f}, Y: Fp{0x37987ef8c9049011, 0xb4244d0bd2184774, 0x9a04c4c60e1b3d8a, 0x67cce7e47d4e3c1b}},
	},
	{ // i=16
		{X: Fp{0xef8eb4fa50aa0898, 0x0fc1e865cdcbf7c8, 0xe724c94c7300b678, 0x4eb6cfd0ba677711}, Y: Fp{0x5992babb2b3a88cb, 0xd81806f061a63d32, 0xf6c72fa7d42b7ff1, 0x909dc742405a3887}},
		{X: Fp{0xf1a285551b50a548, 0x59d255dc99dcbbc3, 0xd2990ea771edb6d3, 0x4d9405de4742fc52}, Y: Fp{0x1bb8a0bdf167f8d1, 0xc0a0794991d70cc8, 0x2cd63f49a17a436d, 0x5354e2aae6442e79}},
		{X: Fp{0x600cb0ebab7001ab, 0x6653366df0352526, 0x77f7cfbaf0d3cae3, 0x5c42cbb3dacdb503}, Y: Fp{0xe692e369bedee611, 0x23ab23644e90a1b0, 0xacddb5366d24eff9, 0x3968261a8e7de43e}},
		{X: Fp{0x696c06b65cd4aa45, 0x39a7cceb434fa983, 0x68e85a2d0ad949a3, 0x07aeca8f0e5c5935}, Y: Fp{0xfa3fee2296cb6fef, 0xb185d879cd0ffba1, 0xb4decb83aade65a0, 0x15c53147197cab13}},
		{X: Fp{0xb5a9e0c495f346cc, 0x86e9c179d538f669, 0x6bea72bd08b1a724, 0x9af99bbb2dfd8ced}, Y: Fp{0x9ab9b9b5b009668b, 0x3eba6959019e085d, 0x50a314f6f83d12eb, 0xab81efc1e0e9779c}},
		{X: Fp{0x4e805a33fe28fdb0, 0xbd2857ef19f79c59, 0x32f3737af8c11e4f, 0x77e3cbd6a14d3fd7}, Y: Fp{0x4e1374faade8daac, 0x1dfebfcde737eaf3, 0x53319aa24e839f3f, 0x0ef96a9ffb7e8115}},
		{X: Fp{0x00fe998d8e93a264, 0xb5e66945cb782a86, 0x401f7569c8a9048a, 0x2c576e396c8e8c7a}, Y: Fp{0x3b4460de414406fa, 0xa91c43f288d037b9, 0x928e9cf10367c4eb, 0xaa9eba3cb4e16336}},
		{X: Fp{0x8b9ffc013ac9583a, 0xa49697c274700017, 0x150f22bdb67dda23, 0x184bbfb43d25297f}, Y: Fp{0x2d597e7ae3d4326e, 0xfc808bb2b6651d63, 0x5d0b2a91d005aee3, 0x0895e6323030ada7}},
		{X: Fp{0xf3109976f1982793, 0x3bfd716420096afe, 0x2d49df64fe1f95a6, 0x5946d06c6ae9060d}, Y: Fp{0xb9beff2c8014c65e, 0x1c3d3ae45f41e42e, 0xac86770da288c426, 0x265d0f817ad49f24}},
		{X: Fp{0xfbf312389d13af34, 0xf4f36538386d7dd7, 0x0a173c5873c40a5d, 0xacb7e49bc79bd158}, Y: Fp{0x54b687fd517e3ba4, 0x3dd1fa987baf571f, 0xb4825f433932d1c5, 0x7b27902f1ca2e83e}},
		{X: Fp{0x9c80064526de5818, 0xcaf351f33f09fe4f, 0x568dec62b94fe654, 0x6e5a3764b04f41a5}, Y: Fp{0xcd60c6ca5f3fd452, 0x05139461d7bd5664, 0xb83f0145c63d7f39, 0x9f4ec02d4365848b}},
		{X: Fp{0xc942c8f33e6b4a3e, 0x26ce82827efef855, 0x2c1115c20818ff7c, 0x744bc1166404f713}, Y: Fp{0xd85d636f0fb70464, 0x818e16b6ef122ad2, 0xee25044d48603017, 0x5cdbbed8cf4051ec}},
		{X: Fp{0xf8d0a78a28692bbe, 0xda11907834a7dc90, 0xd759f95648716310, 0x8f5b9c8627366cd3}, Y: Fp{0x852cbdd54705d10a, 0x1ffc3e127e877605, 0x1a03635cb0b74aee, 0x6589696016439fb3}},
		{X: Fp{0xe87b034a3ea32cf0, 0x69e655ef1345e297, 0xd016deaeedf3c926, 0x0224a5e0872b3626}, Y: Fp{0x863f5dc2ddb4e5d1, 0xe944e0ce29154560, 0x12d91b98c1740cff, 0x65e529e7a9830769}},
		{X: Fp{0xf38ed3aa61e36195, 0x1393eb64b5c1281f, 0xf1505b8a9b472c67, 0x6cb7dff7fd325cb8}, Y: Fp{0x2df4ce7ff1810b1d, 0xb8f8f706b1dedd66, 0x51453b36727f5f42, 0xa616915d970cade7}},
		{X: Fp{0x65014628219ccc9a, 0x99abda1137b5b62a, 0x605611bcf3f3f50c, 0x25812e5d777128d5}, Y: Fp{0xae136999a8ba87c1, 0x570004e740dcfd0a, 0x2f81543575171aa2, 0x1aa78ef40893f6c7}},
		{X: Fp{0x010fc1dd68c0d56f, 0x38c1526f8f37fd34, 0xd40ccb2bef6c2a79, 0x4cb43dd8c6b89b48}, Y: Fp{0xf17e1517da6000c0, 0x3cf67e95718ab37e, 0xde5202146953815c, 0x11354b4fc6af41ef}},
		{X: Fp{0xf1b2c08348f60f69, 0xa018c292c3e1f67d, 0xad5c1fa1cdf3cb71, 0x4614d24f897edf2b}, Y: Fp{0xc1ed8156d6e0f7bc, 0xa3fd266c03ce247a, 0xad70396394310ac3, 0x405fd3ce43c624e0}},
		{X: Fp{0xcfe6160cffab9194, 0x013d914d0815e377, 0x9bebe812c21974a3, 0xab21c0e1387d97d3}, Y: Fp{0xa2fcdc111a452a19, 0xb692bb514a8e6a21, 0x7b072d6238d53fd0, 0x82c7693868e3a1d6}},
		{X: Fp{0x7cd9b881b6c7d3bf, 0x4499e05f9d7f960a, 0xafbcb691bb01addf, 0x3a857795ea314992}, Y: Fp{0xc18a04fd50bf5813, 0xc4bfa769b33cfa00, 0xbc93bd0b5036a8a6, 0x82389f15349709f6}},
		{X: Fp{0x5a45e905bc1c0b79, 0xfc2db3dc6474de4a, 0x7792a49b18b298d1, 0x2868c447e81195b1}, Y: Fp{0xb9a76102592935f3, 0xc0edef2077e0cb57, 0xdfeca6947d0ffda2, 0xa52976634a4636c6}},
		{X: Fp{0x0378d7f65fabb9ab, 0x3637e9eba220bfff, 0xe3d3886c67ed7608, 0x8bac56db4cfce118}, Y: Fp{0x65a5029fef12482f, 0x2162a26ae75c178a, 0x2dc9b68f405fde4a, 0x93ae8d182ab506b0}},
		{X: Fp{0x4d6b5a3339e79adf, 0x84e97ae1bed62499, 0xa93702957e677e02, 0x16bb2587fe685f6e}, Y: Fp{0x1ccf919542d49943, 0x4e73ebe5ec0fecaf, 0x93385bc6c4a18d07, 0x1cbecd18844667cd}},
		{X: Fp{0x4406788f75181837, 0x9fdbdd913a3d17d8, 0xfc2654c3b6ee7e8b, 0x50c6f9121050c94b}, Y: Fp{0x169f38e028f56b13, 0x2b71419e1227827a, 0x21527a8f711e0d70, 0x8347e0e93e7c4cc5}},
		{X: Fp{0x0e6038b7ec8758b2, 0xdd62a97b2ee073a1, 0x371d42256de20b7a, 0x83ce23167c02a1b8}, Y: Fp{0x9949e99aecfcb2c0, 0x1fba6b1c175c775a, 0x7efc44766501a223, 0x60dab2668c671b61}},
		{X: Fp{0x3015918364edfb09, 0x4129fcca5b5e2e6d, 0x4c874a9ceccf3a86, 0x3b6ee1c8b1fd4555}, Y: Fp{0x0f282a0dedcc21c6, 0x28c91cf96c6829e6, 0xfcdd9820e6b89f07, 0x04436763d4ce0396}},
		{X: Fp{0x8bd1e362fd533ba3, 0x6bbfb46ffa504a73, 0xa1af3f5ba648f285, 0x694f6d963c4cbcbc}, Y: Fp{0xb8e0c47107382abd, 0xca182bf0bafaf008, 0xf855a7b5e31841ad, 0xb35a5b371a124617}},
		{X: Fp{0x71ab095a7a72f898, 0xf21b411fec770a6f, 0xf7a65c300182443c, 0x491a28db3a8f4639}, Y: Fp{0x42c2b7140ae2bf2a, 0x14ccfa6e643055e1, 0x664a83a6cf4e7fcb, 0x8549e06e6ff9385f}},
		{X: Fp{0x40b4782496484968, 0x333a00b5daf39583, 0xf5203cbb6c8aeae5, 0x48b23992259dd23a}, Y: Fp{0x81c892184a9aa065, 0xf4ead88cacbd5339, 0xabd028d8f43de928, 0x2613bbf4d2ee0fad}},
		{X: Fp{0x522a26c3fcff7fd6, 0x06313c3a8057fda4, 0x1ccf1efff75e1e34, 0x76dfc928f532b4b6}, Y: Fp{0xbda13145f5c03a0f, 0xc4afcf116461852b, 0x0f11b948cde58074, 0x6118d2120caa89da}},
		{X: Fp{0xccc09234aaa5be18, 0xb7cb1b2067593e94, 0x5e57e3f7779d520d, 0x355eae08d9d4d4af}, Y: Fp{0xdda6f8bb61c9b58f, 0xeb6baacd14e9efa6, 0xac90f2a244e71568, 0x13ce7cfd9afc5c88}},
		{X: Fp{0x8f41914779d1abb1, 0xb0d43cf872c667c7, 0xedc6cf70ed97cb4f, 0x05a31abe2caab442}, Y: Fp{0x0b7f9f477e5fe441, 0xe76f3af4c5080b0f, 0xec06328c49a9aa5c, 0x4b9efd90f2d70445}},
		{X: Fp{0x0984fb54130efaf8, 0x26124cf36a4549cf, 0x9b381739ae568405, 0x5e216642bf62a300}, Y: Fp{0x31c41382f230ecf4, 0xd73ae0ba4806c317, 0x57d560e2864ad9dd, 0xb091eeb7c66d90be}},
		{X: Fp{0x4f1f532f2718f831, 0xe6eccf72b5341a51, 0x8b2d3f89c014a089, 0x42ab90c57b203914}, Y: Fp{0xebec98a08deda5fd, 0x58b9979d66307406, 0x426de89c9f867fe1, 0x82481645c41bc8f2}},
		{X: Fp{0xc4d7351661dbdbe1, 0x0caeb8c7f657730a, 0xf2d615e5288e2b33, 0x1241d7582dde7c76}, Y: Fp{0xcc12efe2fab39885, 0xea4917b924b87a4d, 0x264ffa8d2c33eb6e, 0x6a613584a61300ef}},
		{X: Fp{0xccbd41979a22a42b, 0xa3dcf86e4bf0f83f, 0x49713e2effca1182, 0x75db8b4e5c00fcf8}, Y: Fp{0x9ff78cb091c29d53, 0xa7748c88afa12d97, 0xa7af77cebec19dad, 0x18594abafffdbcef}},
		{X: Fp{0x74760b0efde36854, 0xe7dd057afa2c61fc, 0x12385c797de7007a, 0x4823f9542603503a}, Y: Fp{0xf1bb68d03ffa57a8, 0x5c936a7f4169ecad, 0xb7aae462db3692f9, 0x2842b137a52698ea}},
		{X: Fp{0xbaa20831f9ded0e3, 0xf2bedbd487d1159d, 0x488427f9e3c4c4a6, 0x33dcbdb69ef459da}, Y: Fp{0x8b697286d386e813, 0x8865e696ac21fc83, 0x3e9d4edc8216745a, 0x0728c83813336d04}},
		{X: Fp{0x5845db0ae90c2979, 0x970ad4fe070dc425, 0xc13f1fd56002b079, 0xaab8e90e189bb90f}, Y: Fp{0x7e1bc4b55bb720fa, 0xc92718ad01ba11db, 0xe05dfc55e076c2bf, 0x13e7172c4dd1ae13}},
		{X: Fp{0xf9a33b84eec4a22f, 0xab95ef45e6eb8cb3, 0xd7e71f2db30ebdb7, 0x60bdaf91114e248b}, Y: Fp{0x73b99e69d47e6b48, 0x1180097150b55135, 0x9a93ce3fd46c7d15, 0x6bca770a2878551d}},
		{X: Fp{0xad925c7dac0175f4, 0x090308d9b5c54157, 0xed20ea91bda02bda, 0xa5ea0ca551ff1456}, Y: Fp{0x31e9ff6ac33a222f, 0xae2b520c0c79f022, 0x58e7653975967130, 0x6aefd61f7bbaf1bf}},
		{X: Fp{0xc410af4a36edc2a7, 0xafad35bf1c073664, 0x467f51ff51705151, 0xb5149eff3497452e}, Y: Fp{0x42136fe952019107, 0x2e6a192a2f49fa95, 0xa23529b1757989ec, 0x81b3e353114e0cfe}},
		{X: Fp{0x6e212fe73cc1426f, 0x1cf7fcc2edda9d61, 0xac089b49ccb08060, 0x8e4b8278f09b769b}, Y: Fp{0xae621a05e559cdc3, 0x218e1eed9ce12a7b, 0xa5ce7a8bdab7471c, 0x6fadfe6a6a2be159}},
		{X: Fp{0x3d05e6aac6c3958f, 0x8436c9782971ca2c, 0xf0ff7948f8ffa135, 0x6a1fcdb0bab29a8f}, Y: Fp{0x8a54b9d2aace6e7f, 0x6ea05342c5c52627, 0x7ddba9db57ad0593, 0x7c345f9acb035148}},
		{X: Fp{0x38a10ca7bb56f2d1, 0x94c449ac8994afa8, 0xd5d726436d921cce, 0x6c531d059e4d99cd}, Y: Fp{0x61348a966d2f512f, 0x9572e05dd4f006a1, 0x05bbc75a185e1865, 0x8f816c630c380324}},
		{X: Fp{0x8068974d6b260a05, 0x2efed22244933fcb, 0x45879405bcd26d30, 0x8308fbec55b3f974}, Y: Fp{0x550d9afde726e664, 0xd30e9dad62e7f3a8, 0x78fb2af0b3052b9e, 0x85c3bb1a7b423cec}},
		{X: Fp{0xe2d817eed542dc55, 0xb5d7d2123d870560, 0x9ea24c730ea64fa7, 0x08f1123a44c7fdbe}, Y: Fp{0x29193e1ff97cefc0, 0x637a192208a816bc, 0x7dd91489cac762d7, 0x16af0fe751d0ed93}},
		{X: Fp{0x02ac707f9ddad836, 0xc9bce626391a7a58, 0x9fadff5f7eaff6bf, 0x104788ce8847118b}, Y: Fp{0xdc6cd631a3b2bff6, 0xf23802a864f3f5e3, 0xaaf0075454b73799, 0x200bf7a7030cb7e8}},
		{X: Fp{0x69f215b90727635f, 0x7dc6de048a2a44d6, 0xd59a9ed69a5c2895, 0x730012bcf05184b2}, Y: Fp{0xe6ac90e698246060, 0xde5e4d158f1189c0, 0xccb52fe7c86709cc, 0x7f5a1d540b031307}},
		{X: Fp{0x6ff01cfdaa3a330f, 0x04e190981ea31ea9, 0x173fe1c0e952cf66, 0x18ec4e8cd427c292}, Y: Fp{0x15f178e59af17894, 0x3bf869c8ef31cda6, 0xa828f4678f42fbc3, 0x142d05bb73a5f38c}},
		{X: Fp{0xb0f0d4d1b3d49fea, 0x3b7ae7db785a9a11, 0x81f96f1d08ed6bc4, 0x1241ba66e2b715f6}, Y: Fp{0x9fb96e6a7113b050, 0x48daafb26314ec3b, 0x097ea4ca7bb141bf, 0x5d0759c4280a084c}},
		{X: Fp{0x504ade8918f62c8b, 0xe4cf2b14b0e8f829, 0x585ea073b8293dcc, 0x4e81dcab490388c7}, Y: Fp{0xff8c5ac8ffa8d2e3, 0x2b7aa0a51c041afc, 0x48de445d8dbfaf40, 0x69b3ff29b8383705}},
		{X: Fp{0xab248c2a0f8c0ba3, 0xca502cfe0f0db9de, 0x8175db26da9c1bf5, 0x68c804060bddd6eb}, Y: Fp{0x01abd56830e1fefb, 0x38670d611324d540, 0xfeb08c78140dcc8a, 0x9a6926d04245df35}},
		{X: Fp{0x75d52599bf18b320, 0xc3fc165538e1221d, 0x64f4bc47e6fec479, 0x98af49cfdc7c9edc}, Y: Fp{0x5ee38d9198ff1fa9, 0x7c3f02545546d643, 0xc1f317cff1402863, 0x72e9749e7d2dd6b5}},
		{X: Fp{0xc937f69b9ff5537f, 0x373098ace4ff13c5, 0x4a82fdfee07ef999, 0x31a13d45c3642105}, Y: Fp{0x1566e5b748ec26d4, 0x0503f26e73190b58, 0xf9301a490a936d0c, 0x1ec0dda36a422b66}},
		{X: Fp{0x3fcbf502a52ace9d, 0x28459432c6fd24b2, 0x0bab8e63733f3d24, 0x6378e9fc73e536a0}, Y: Fp{0x926edfaa6fe28cad, 0xedff47d8f6d17dc7, 0xeff00114e688624b, 0x4f6ea6bdbf3bfd8e}},
		{X: Fp{0xe76bc7cfed865283, 0x237f1f369dcca746, 0xa0612942a2da0c30, 0x69153c3179f6f6e8}, Y: Fp{0x9fc51a9dca0dfa43, 0xff78501421f07bd4, 0x7e6a629ad6ec1a46, 0x2d18ffe164330c9e}},
		{X: Fp{0x7417a7f85961719a, 0x29e8180e51c3abe8, 0x97238fcd9ae7bec6, 0x5cf10eeb77e4762d}, Y: Fp{0x1695a80f397c0d6b, 0xf3de1a8d6a2dad76, 0xf9f1679d4672abe7, 0x676ea5b8e1af2ac7}},
		{X: Fp{0x2d7093a9b7ab76b5, 0x2e077382d762c099, 0xa40f1c5a94ea9d64, 0x11c1d8a59d9e27c0}, Y: Fp{0xbe2186e19421d02e, 0xcf4fa28a8c049d5f, 0x6ff5fd629c4fed61, 0x4c45dcfc70d1b6b5}},
		{X: Fp{0x15138d384b98db91, 0xe25e2b04da8574fc, 0xfb10d3e368f180d5, 0x335349125d611f19}, Y: Fp{0x1d9162c9aa3c6238, 0x9643c207c1c57ac2, 0x2753e25ea605181d, 0x8cda1f1362fb4208}},
		{X: Fp{0x7e126fd6f915203d, 0x4fbc4a89e97efd4d, 0xf22aee2973120906, 0x96980b84aacadc71}, Y: Fp{0x24529ef0c64d2649, 0xd8307f241988f7cd, 0x8ed865bbd3c1f3d7, 0x071734dd65fecc6c}},
		{X: Fp{0x14b59f7ded9e2f5e, 0xe44ecea361d44319, 0x3299aea91ecfe843, 0x3481a86b87baaf19}, Y: Fp{0x5e4e5f988c6ef23e, 0x36cee189c0e16042, 0x0b882e81878d6487, 0x084de6693dd42594}},
		{X: Fp{0x12265a3a82b0d4f7, 0xc16f28774f659316, 0xf0497be64479219c, 0x7387aadffacc6b45}, Y: Fp{0xdc5fd6c0d9d11f85, 0x3057fb7a670b103a, 0x2a2c3191781141c2, 0x40812d3c9e2a06c1}},
		{X: Fp{0x22b84b01e0a9d8bd, 0x71b288ffa415e476, 0x24246e53fa1ba90f, 0x83140935bfb4c554}, Y: Fp{0x29238771fe817791, 0x05593b82ffa44def, 0x4114429e6d33dd84, 0xa2a7d005710358f8}},
	},
	{ // i=17
		{X: Fp{0x0d786326206f5841, 0x54e45f040e91ba9b, 0x71aad7d06a7c1790, 0x318c35638ece4a99}, Y: Fp{0x72bcf69f55100974, 0xc7d88e9f5b63fd67, 0x37d7d7dfa644a451, 0x7e041ab3f833fd5d}},
		{X: Fp{0x991c6c20c725b179, 0x974d0aaa33a7b57b, 0xcd847553cb772d41, 0x3f3eba1633cdaab7}, Y: Fp{0x2dd1630778099871, 0x6cdc8b0d575dc55c, 0x769726ea238669e3, 0x6f70d360a5c3bf2b}},
		{X: Fp{0x43955b24bfac34b4, 0x44abbaffcb61e8cb, 0x7363733fa4b1fa21, 0x543aa3b20ef0f662}, Y: Fp{0x301f59b5e94ffc85, 0xe97b2c03f16ed7e9, 0xb901483ffdbfcee2, 0x9efad21681154ce2}},
		{X: Fp{0x33ba2762796c9b2f, 0x7f55fbc1bc33a85d, 0x3f8643b5cd5e6df7, 0x1bcb027aed74198d}, Y: Fp{0x0846855ec793cf30, 0xf1ad066a23abe14f, 0xc78256cadd1f7b3a, 0x4e61bc145a1524a8}},
		{X: Fp{0x78d58d7bec7ba584, 0xd2536866f78c7877, 0x8e92c38b67111318, 0x3c197f2aac618434}, Y: Fp{0x21e6df16df1e1c21, 0x8964cc3c89e51cb7, 0x2108334c3536f480, 0x7bc71e407fbcf6b5}},
		{X: Fp{0x7f6c6059a35ee6f7, 0xb9eb9a489e3a9bcc, 0xbd570b9a033287b4, 0x65cb6ebc0aef1867}, Y: Fp{0x724f3473d4133d47, 0x5b82b8b65d0ff272, 0x2ca9d37c001215bc, 0x025ebdb714b5bdd7}},
		{X: Fp{0x583d779b5a40af0f, 0x2dcb53441084347a, 0x2e4d91300d1a447d, 0x7b04738bd368aa4d}, Y: Fp{0xc879ab5c6fa9e899, 0x2d9470171cf0a3d4, 0xdb3d03323d5cf3af, 0x65935c9cfb8c9b06}},
		{X: Fp{0x7bb072aa78d6ac58, 0x9f374818c6e584bb, 0x418631729cd0e27a, 0x310d00b4ad10e164}, Y: Fp{0x82dcf0163395864c, 0xd4e3e0e5d85dca51, 0xb44ac02ebca2cd77, 0x894e674b8271a167}},
		{X: Fp{0xa96f8b8aa797b46c, 0x16ac688b629c5659, 0xf2a8d7d43791c8e6, 0xae44900e72321376}, Y: Fp{0x94dbee06485a01e4, 0x8746426a9749c6c1, 0x58999e0ac0567c88, 0x1634ae167b1eb364}},
		{X: Fp{0x8047c70b052568fa, 0x4ef897d02064dfac, 0xb2cba3ea16d94784, 0x38c9caed63535f93}, Y: Fp{0x65a7b0c237b101da, 0x832ab90dc5351d08, 0x02cca3b7fdb0ecb1, 0x9d13df604162805f}},
		{X: Fp{0xa26be91f2e26f978, 0xa9592b3cd2f1a179, 0xa4669a801d76101c, 0x87c80f1bcf1bb473}, Y: Fp{0x34b75730f91e3728, 0xeb6bca7161ef0cbd, 0xa810554a82adccb2, 0x896385b13a3e60a8}},
		{X: Fp{0x281ae82151992d6f, 0xeeed2f0a6715ce7e, 0x9ec7f4e45e3b7201, 0x2870d381bcaebd5d}, Y: Fp{0x36b9e49b9778ece7, 0xce7a61778a01f09f, 0x4475ba704f0caf88, 0x5f3a1b0d472e0cb3}},
		{X: Fp{0xea670bfb09f1df6d, 0x11a65aac923a543b, 0xa7d5a6e90b426c20, 0x7771ba5aa4bad961}, Y: Fp{0x6fb18f0055591829, 0x9c4be17b37e31098, 0x44ffd8a3b39b8f43, 0x0318de797584db84}},
		{X: Fp{0xf0493dbeaa56a417, 0xb77135809ad81422, 0x0733d76d6469bb4a, 0x2f59543a85c43fbe}, Y: Fp{0x3325829d6c78500e, 0x86e1e4a53b73f37a, 0x4075bada6f23cfc7, 0x0b7b965bce2a25cd}},
		{X: Fp{0x9764564385ea4d94, 0xed5d1fa3febff81f, 0xdd882e4742ca5486, 0x1805baaf4f37db6a}, Y: Fp{0xefbe6d4304189fb4, 0x4c9eaa54092a6906, 0xc34bae35e25c985b, 0x6daa32ccef086e85}},
		{X: Fp{0xf9b9e67ba9ee86d1, 0x60f75607753998de, 0xafe44f04ae507284, 0x22bc3a20e48930cd}, Y: Fp{0x702e39e372b54d7b, 0x9ef57f36139e8383, 0x640092ff6b7859d3, 0x08259bdbd583d26a}},
		{X: Fp{0x82d76c306bb43961, 0x4dc4905a87986b92, 0x7bf3b9228f9d1a2e, 0x18a54154604b291d}, Y: Fp{0x4e309ef0fcf70aef, 0xaa063bc484a8ae80, 0xdf6ae1a12afb9be8, 0x13e75229c0b82437}},
		{X: Fp{0x855839746467fb01, 0x527642f0778fceee, 0x21c68dcbeca6a806, 0x9d9fb9b2b3edde1f}, Y: Fp{0x610983f08cfc3dd5, 0xd9233a12cbb2eeaf, 0xbee1bf35a853e32d, 0x5a6cdde96646846e}},
		{X: Fp{0xf04e189a729da2a7, 0xab4e63df60b579d2, 0x4b3983aa843a2968, 0x2f4d379c0051c1de}, Y: Fp{0x1364d32ce40c19bd, 0xec568818cb4cdd52, 0x0f76cc5984009112, 0x22fe4901702e309b}},
		{X: Fp{0x2724b626d8b5d512, 0xa3830941a5e7426b, 0x93b7117c2b772cf3, 0x6f324edde4c8e23f}, Y: Fp{0x151f1fc9a38ccb61, 0x47faeb8987e75b02, 0xe90ddfc1d0a7bd9d, 0x7ec385691d28a8d1}},
		{X: Fp{0xa73d22c14ed81dd0, 0xc48b68b3b2d8b412, 0x505b9d0cef4edb0d, 0x63812110777f2a11}, Y: Fp{0x75513811e60e6180, 0xb188edb7ec965aac, 0xd44114389f0ad12a, 0x00b7e3b81bc668a2}},
		{X: Fp{0xdfefb9b5a4039c27, 0xeb373db548aa7828, 0x48df3b0a8d04efc8, 0x9c0fe9452f973a7e}, Y: Fp{0xb40ccf90ca17578e, 0x5498c008131276d9, 0x38213bbc47ea182e, 0xa970e83d1ac2f284}},
		{X: Fp{0x48474f66f4a0bb79, 0xb71cb10f315c256e, 0x11dfeb6c839261ab, 0x2b582965b2e03075}, Y: Fp{0xe6d0df6c35877523, 0x019dc910a73a5ef1, 0xe1458fdc93e872eb, 0x3538cb9dfa104a24}},
		{X: Fp{0xf067d347c518a016, 0xf4d35b20888dfbca, 0x829fae52c24b3842, 0x0731e5869ba67b97}, Y: Fp{0xedcda8ff132320f3, 0x5a7f95d6d7074496, 0xcf56ac1645b2d4a8, 0x623ac319e6041556}},
		{X: Fp{0x33f70dd97818db90, 0x8439c1bfa2626387, 0x8e9351b1e4e7f572, 0x268f77fac7e48df2}, Y: Fp{0xdfe334a0c63498b9, 0xf010e460b04733e4, 0x38db67a82ed7920e, 0x804f590e9fd22bf6}},
		{X: Fp{0x7c7254c6487f5e8f, 0x26e97942e89a8ac5, 0x7f3ec7225f56bc20, 0x417fbac2893e7b2f}, Y: Fp{0xa7f55a09d6691cf7, 0x5bda2211e941f770, 0x709a38c84790bd0f, 0xa6a356dbec2034f1}},
		{X: Fp{0x06c1f02b25941edf, 0x29909f93c0a82018, 0x058e34338c309658, 0x3df121afeec78da8}, Y: Fp{0x6f6aafb5d97fd0b9, 0xb60b29ee8703e4c7, 0xb67c09f4a20a784a, 0xa471900b53609637}},
		{X: Fp{0x5f6340aec14cfd0b, 0xfa0691bb5eaaca12, 0x167f21ea8200e79d, 0x4849cd6e9b1dda54}, Y: Fp{0x10b7d4aa5bc74756, 0x54eb8d6316e750c0, 0xb775afc68187afb9, 0x414e54d1684844df}},
		{X: Fp{0xd74290383b0c88ca, 0x026992b00120910e, 0x237cb659162e1879, 0x5f91d4a7305445bb}, Y: Fp{0x360b606258c48127, 0xded42fef21ef8dad, 0x59d0612ea6f4119a, 0x0b3e4de2ef981774}},
		{X: Fp{0xfdcfa8939bfbac56, 0x4511b6b3da2b19e1, 0x138f2840e02a2fed, 0x9b6c51b2fe8a2c5f}, Y: Fp{0xdd2fac1511bda6bd, 0x839613af2edef51b, 0x019752238cf7133b, 0x2bd5e56be885fe32}},
		{X: Fp{0x6170892036533927, 0x4c23a436392984c1, 0xb17e3df15751e3b0, 0x1a59bed17f56bfdf}, Y: Fp{0x6e562186ceac075e, 0x227d37e30a91b96b, 0x6f119c6ff0327e52, 0xabe8393f2e5a33aa}},
		{X: Fp{0xa14a5229229e71d8, 0xc94ce066a1c87954, 0x648d81e61b34e94f, 0x3586c190ebbd8f7b}, Y: Fp{0xf5c1b8c4d6475ef1, 0xaa5146815a5210b5, 0xcad10bd32a5a101f, 0x43b34783254e1eaa}},
		{X: Fp{0x40e105e59e2650ed, 0x6e0d9dbcc2b67c6f, 0x0532d9e16387009e, 0x4f2c16ae36c0e779}, Y: Fp{0x6c871bfb7a788469, 0x8433c1b995803c3d, 0xe41f88b40657d47e, 0x1dfe7ad0d20d3065}},
		{X: Fp{0x877df624a37c9bc8, 0xb9d00bed58c8e72a, 0xe0028af8ff3b71e6, 0xac95f7d9a44906d2}, Y: Fp{0xaa2b3d7a398ffd23, 0x3f6f917100ed35a5, 0xf4a6eb1267af811b, 0xaa53a1deb4baceb2}},
		{X: Fp{0x31bb3dc8c3edfaa8, 0x4301d1e73bb1fdaf, 0xedad31ab97f2a7e3, 0x1b3776b0fc96e10d}, Y: Fp{0x227edda202e839be, 0x66f76e0f2f862d65, 0x60064e55c33c91a3, 0x2f4a641b23108f67}},
		{X: Fp{0xcf4dcb675b3d3f81, 0x792eac18515c7864, 0x8e92e48910d472be, 0x45bf14f62dbfcac8}, Y: Fp{0xe58f8cc18d44a313, 0x36fc9f276ae1b6fd, 0x66a79889e5c9a770, 0xa0463f62992a6d42}},
		{X: Fp{0x67eba0ac525d0ab9, 0xe033ca80cab19e53, 0x27084c7dbc7c81b0, 0xa8bf746e44384e0c}, Y: Fp{0x1301fbc302085513, 0x049f6d628354b37a, 0xa0c0dfe20aee25bc, 0x038c813e895953cd}},
		{X: Fp{0x8ddb361fc73f7f50, 0x85d239d9b18edc4b, 0xe2aad0d36c5eae0c, 0x295ca9a1d74ef100}, Y: Fp{0x92a09bfb7e91f4a9, 0x70c093e26fac19fb, 0xf44f0fa5bdd53782, 0x8b5378708a8f23cb}},
		{X: Fp{0xbea9717051785dc0, 0xb2f6a375294ee34e, 0xa3156b128724f6d0, 0x3bae5e7b898b8b5c}, Y: Fp{0x2665cbaffd7df60a, 0x4a552487b322a6e0, 0xc5ee44bf5423881e, 0x50dd4e15046775bf}},
		{X: Fp{0x08e8f9e4cc6c180e, 0x0eb0f50c1cfe9dd4, 0xc00d0081720a1144, 0xad191d22f556d9e0}, Y: Fp{0xc9f5358c156bea27, 0xb3686232eee4f301, 0x625bf7fdc338ec26, 0x70eab78a59d6b3c7}},
		{X: Fp{0x23a24c0099c1d275, 0x125caa14627505e9, 0xead6f4c56782fe72, 0xb1ada425ac13ce46}, Y: Fp{0x7ae28b8d700fa681, 0x99a5884142423c00, 0x3688c7aea7eefefd, 0xab74fe54b0064785}},
		{X: Fp{0x29ffcf597e771798, 0x48a51eb63066dc70, 0x30efd8b3abddccac, 0x9a6145c13c87a256}, Y: Fp{0x06ec5e8a230c2d28, 0xd41f2a11cc10cab7, 0xd12c770164131771, 0x93c548669f01a10c}},
		{X: Fp{0x673a904b86efccec, 0xf68fc5113ed74517, 0x158d810e5c8d1563, 0x9387bc4011fae3a0}, Y: Fp{0x0eb0eca89f24f039, 0xd3bb7a64d24b643a, 0x026ef120058cd16e, 0x5e82a755901558ee}},
		{X: Fp{0x2373df09faa7d9f8, 0x9cf00d6eabbee6d4, 0x4739674e1b71981b, 0x828cd468c58cdd7d}, Y: Fp{0x0747cbf2281c8f82, 0x94c88ab2218b26e6, 0xb3993cbd33bd5fec, 0x2ed15fab41619cd7}},
		{X: Fp{0x3c36b3b261a966d5, 0xea748a5c97a194c9, 0x0ff81980a3f66fb2, 0x9fef10a64a12d0c5}, Y: Fp{0x122a4dfd3a8026e1, 0x6e5a620db273aaea, 0x6fa474260113244e, 0x7f7f8ca452afbc4a}},
		{X: Fp{0x8bf3f69bc269a631, 0x02bcebc5ebfeb8f2, 0x8c0eb9c86588a477, 0x2a7bd6f087c5aef9}, Y: Fp{0x0aa8dcfbbe080add, 0x171d990b0ac005d4, 0xc96f6abecd63af6e, 0x67931fb64aad68d9}},
		{X: Fp{0xe6a521e50a972015, 0xaf98f66fc77759a7, 0x7e5a6eb19f96ec62, 0x4f9fde809ac7ed98}, Y: Fp{0x488c810e108358e8, 0x805d88a2a02a1d92, 0xac16208773050dfe, 0x531b5413343f91cd}},
		{X: Fp{0xc9896075d6a69ff5, 0x0e3305850f71c675, 0x51405e556352def5, 0x672cdfb44a97309b}, Y: Fp{0x71b2331d767279ee, 0x05c63a412b2214f9, 0x6fd87d109aa2ba34, 0x439b78aff4b266b0}},
		{X: Fp{0xb95dfe2a0511ccf0, 0x594acad4d91035b7, 0x209e48ef281627d8, 0x87e6b29e8706c6b7}, Y: Fp{0x9589c50ec372f32d, 0xf6d2e69845690221, 0x7e850a6ce4cc5f43, 0x99ff13b0ac238363}},
		{X: Fp{0x680347040ff2f67f, 0xe601bf1c5c9813ad, 0x6d0dd5d8024bfc4c, 0x10a230abe323593f}, Y: Fp{0xda9d9deb5995bafe, 0x4110c2cc122c511c, 0x95745fade23f96bf, 0x522553433977b859}},
		{X: Fp{0xbe1cbec20ba59ad5, 0x308fe742f50218ab, 0x4d49b8a1d806f5e6, 0x69c2a66652a017f1}, Y: Fp{0x5a9ac697a6c99981, 0x6805e9c9e42c71da, 0x3e3bd6581ff0f454, 0x1a07164bcd55d9a2}},
		{X: Fp{0x3cffec3612c6fa44, 0x5166a66476b6aa5f, 0xe64666135a19aadd, 0x528ab0828f78288e}, Y: Fp{0x2984d9a5d56fa53a, 0xfdd89faf83876541, 0xbb0436c2c215b5f8, 0x7100789ab031b2ca}},
		{X: Fp{0x403051c9a4d3b6fa, 0x690ac1c9e9705cd4, 0xd0783d48b1654bb3, 0x28fa57bb789f34ca}, Y: Fp{0xb81426f248590d61, 0x99c9d9466a0a18e6, 0xb2fe9a88e955b43c, 0x984471f5dcede1db}},
		{X: Fp{0x49c5edd20505e1b7, 0xd0ce2f34819ed8b6, 0xfe2a3883fd23f1ac, 0x98d29783e417715b}, Y: Fp{0xf238440f5a633023, 0x19b0d73cab2a0bee, 0x1f1173f7c948d8f2, 0x36bf2a6dba9ec754}},
		{X: Fp{0x94a39078c1e05da6, 0x91ece07471152f2d, 0x6b5a47de61c78c1c, 0x7406ba9afb56e6bf}, Y: Fp{0xf6e4a62708fcd313, 0x5a97fb24085bb2fa, 0x13b08fcc0a2b96ee, 0x1ca09155f3315081}},
		{X: Fp{0xd0eb469d6438ebfd, 0x591431a1da5385ab, 0x1fa36c0e3d7458bf, 0x9e051bef856de57a}, Y: Fp{0x1ed8054ed0003ac2, 0x99656f0cd0b34936, 0xfd13a0845f790819, 0x97364d8d0fc808ca}},
		{X: Fp{0x9fa72a19326781fd, 0x470ea941ff0f58b7, 0xcfbab275dc78a8df, 0x65acb2eb2b4aec9d}, Y: Fp{0x2b64e0028c306150, 0xded3e928c0d9ce24, 0xfc690e45bc71a1f2, 0x232273dd61d46552}},
		{X: Fp{0xaa59ac6e7ca1f1df, 0xf698f23fb8314b61, 0xa0fb2f133e169fcd, 0x80ca7036256a18d9}, Y: Fp{0x03f175d73aef9ba0, 0x8acb9f23c4dcb33f, 0xc6519fd3bcf032f0, 0xb50882e6f6c88c2b}},
		{X: Fp{0xd787118bad47c69b, 0xfe4445f024c4b8be, 0x4f02dab1db6fe49c, 0x9458cf37c9a166b0}, Y: Fp{0xf452a80d48be4d68, 0xe07325cb7b647821, 0x82b8940c3c50396e, 0x785a318395ce67a9}},
		{X: Fp{0x6788f151ede50244, 0x2b41285fb4063c4f, 0xcfcceb2a2a542f23, 0x619c0a31442774dc}, Y: Fp{0x1a93605f09d7aff5, 0x1d395f65233d95b8, 0xf536bc9e150120d7, 0x3e1019863070f21f}},
		{X: Fp{0xc1dda991370b3439, 0x24a4593d6b89d1a1, 0xda127c5b91d0c94f, 0x97b28741e54d8a58}, Y: Fp{0x65d83a5d97dc053e, 0x651af2826872ff18, 0x60ebb2785972519e, 0x475b93dbe929d5b7}},
		{X: Fp{0xda3834d36219e564, 0x8f4b59ab9a4a5a7e, 0xb280b74cfdd07504, 0xa6046034684e5aa4}, Y: Fp{0xa59c70060fd08af8, 0xab0964dbf9fe33f2, 0x61b16181d2bfe348, 0x8f01a21835ef14d1}},
		{X: Fp{0xc00ea5f6671425b1, 0x1e4f910a415650bf, 0x39a1d43bf0a53600, 0x1f00b776146cff5f}, Y: Fp{0x2ccc79b1993a4b64, 0x611c884cd9f00c07, 0xcd2b85db57a759ce, 0x75d435901d2acb98}},
		{X: Fp{0x2e0d3a1f96c890fc, 0x228e6255b9d0c739, 0xe571d5fc41a23f7f, 0x394c160230991535}, Y: Fp{0xe5f45910e2d7c1d9, 0x752cd683dec1e25e, 0x74e964107193007c, 0x4860e72182927d26}},
	},
	{ // i=18
		{X: Fp{0xe1b954aa2c2d5d9f, 0x3278c6e71d51765d, 0x75b88565dc184d65, 0x37a4dd52c0378129}, Y: Fp{0x0e0b0271a55fa9f2, 0x99d7c7ac6b4164aa, 0x70d0c8ab8f76623a, 0x4216079563dce4f5}},
		{X: Fp{0x73a2d132f6fd38de, 0x2a23587bd1a1fbe5, 0xd2f2e44798d6808e, 0x1837d149b85cf708}, Y: Fp{0x67905f0ee686fa8f, 0xbed79bc47b3b0d49, 0xcfa0b999c693281e, 0x09fe1af68cd223c9}},
		{X: Fp{0xcaa851b0c7f21ea1, 0x2e4eea9345048f9e, 0x8f781068179fdf73, 0x2527072ca934a1c1}, Y: Fp{0xfb371c28c15f2d62, 0xcfc8ea1a687655c1, 0xe10100acb14ca17f, 0x25a687f104159205}},
		{X: Fp{0x46b8b8692a8eda6b, 0xe98400d89a9938b2, 0x2f6f8c3aa958752e, 0x87928e7b21296dff}, Y: Fp{0xc578f06244de1eb7, 0xf67910a8d1befa71, 0x313c89849f89483b, 0x285df6a6b5c9f283}},
		{X: Fp{0xf39d4dfd53e12566, 0x9ee3828178747b2b, 0x6c53d6f760205a18, 0x8c74573e1879c8c2}, Y: Fp{0xfc4f919ef25c979c, 0x6bd0f2795d644c55, 0x2a3f26824744fd70, 0x6ec67ffa8ef7b8cf}},
		{X: Fp{0xc319a46fbb433170, 0x198f7381e4a507be, 0x3ccf9bf0f0c6c63c, 0x17453de543e1e839}, Y: Fp{0x6bc67627cebe5316, 0x21d868918a21284b, 0xcd0544a04746ec2d, 0x381634a638ee07df}},
		{X: Fp{0x91e476af402fc180, 0xfa0929e234cd767b, 0xf14ac3c76d346162, 0x0b1d736b49b259d0}, Y: Fp{0xfff376538ca9a89f, 0x77d6b0f88ece147f, 0x59cb1eba12982409, 0x77bf59a884fa3141}},
		{X: Fp{0x9fd54eb30368a97b, 0xd4865242602f38bf, 0x31d8e2348b55cd5a, 0x31041d3b7967e581}, Y: Fp{0x5f4dd807cfde0e65, 0xaa45e0ed4fc851df, 0x921d961962539a47, 0x65d7b17393252430}},
		{X: Fp{0x34b12972a10f5048, 0xfcc613a5c9ccc5c7, 0x2f10d75163dce308, 0x6c1fcb29cd0db583}, Y: Fp{0x055d01d12bdfea5a, 0xeceb500a3fb88d7f, 0x380bd5a0bda00732, 0x6aa3f4f083c22cc6}},
		{X: Fp{0xd37486686fe94f6a, 0xb34eb422496ee88d, 0x09eaf4414b3214f4, 0x88e47352ba762015}, Y: Fp{0x351fd2ca8540f696, 0x4e99a7bd500e0d4e, 0x0cc81b5665a3dafe, 0xa3c283e19c6301cb}},
		{X: Fp{0xacef56856072f9a4, 0x4b1cd17de1ab0ad7, 0xead364d5a820993d, 0x35e9f399da344113}, Y: Fp{0xac4c54ffdcb22df3, 0x5112030171c13278, 0xaae8421b632770c1, 0x8c1117d414bdaa58}},
		{X: Fp{0x1ab7d00acad4f718, 0x5b6cb89abc068708, 0xe420361ceaad67c3, 0xacd367ca7879ff08}, Y: Fp{0x1a5551a7453efde6, 0x9ef5029e2319fa37, 0x5b73cafb965a8af6, 0x17d84c1a7aaca96a}},
		{X: Fp{0xde64d3fc9f2d58a8, 0x913fa1df9424a439, 0x9be0f443b33fcb50, 0x31988d897317a10a}, Y: Fp{0xb1be2c662fc58682, 0x9fa9fe029e6c6787, 0xec72a8da62fc0816, 0x0cde1c85e5d2f7b7}},
		{X: Fp{0xcda8f7df31f6f225, 0x74d07b1f25bda8b0, 0xee8b75b4b6294bc0, 0x99c82d541bd07c3b}, Y: Fp{0x5f6b8375e19bc362, 0x4959471bb4100462, 0xe33ad8006c7930f6, 0x5d18c42ba5cbd976}},
		{X: Fp{0x8f58669b04850854, 0x974181fffb3344f2, 0x8f37ea87642d8197, 0x0362ad944687e802}, Y: Fp{0xf6c04c68cf071e08, 0x13538f8e7a4b8c1a, 0xa32cb53f9cbf46ad, 0x6be62fb46da34aaf}},
		{X: Fp{0x1c7dcb3b54b3b47e, 0xca7afdd7fb2d9a88, 0x00641d6449d8e648, 0x2b66d6d2a9e1573c}, Y: Fp{0x2641d66a9af16ee1, 0x14dd7e89f00f4dc7, 0x9adfe685c1132833, 0x089d23591617be4c}},
		{X: Fp{0xd148ff097be78bde, 0xd148b562ab315d74, 0x3649283cbf3fadb1, 0x3444d11ef81f660e}, Y: Fp{0xf2b6af69398c3998, 0xb8c3163284586e06, 0x0b44caa30bbed66d, 0x4c316c509cf09773}},
		{X: Fp{0xb72fed6b4a732c20, 0xbdc44866f481f680, 0x36d3be691d41be00, 0x2acef9ab88afbcaa}, Y: Fp{0x3bb94582cc3c24d7, 0xc778896b7b503ca6, 0xb8f682cde65683f4, 0x3811099508c0d9df}},
		{X: Fp{0xbdd240740608074c, 0xe14a58a7817f4a56, 0x9c66a8542fb5fce1, 0x7955f04500c4df75}, Y: Fp{0xb8bc12a87824f835, 0x7a97ba0ac24b2931, 0x82078be194e8dc0b, 0x099f7583a11ea0c8}},
		{X: Fp{0xbc96f3b2a14a39f8, 0x9f87af34b542477e, 0x97aa4ee359b12701, 0x0e7cdaafceac17c2}, Y: Fp{0xa8be18a775729746, 0x236462024365850a, 0x292ecd28799e7396, 0x7e26717235dbb091}},
		{X: Fp{0x9dc6d9bef13bc940, 0x0de4ded69a6bfef3, 0x3a42b13c7a60ea56, 0x6246373631d162d8}, Y: Fp{0x9501d08d01b32b02, 0x3f6528febcb4b402, 0x48fe3a47614d6d58, 0x7d5ee594669651b5}},
		{X: Fp{0x502dd0c27e2db4d6, 0xe4ac5781727b6565, 0xa5136676bef3cde0, 0xb5dd1b2d7ec31509}, Y: Fp{0x7e323fff136b01b8, 0x661542ba9bfaab8b, 0x0c647f078c13b71e, 0x5598f6858fd174d8}},
		{X: Fp{0xc7c880e649cfde81, 0xd61daeb435bbf5ce, 0x8088307445cab291, 0x49cdc0cddd860a77}, Y: Fp{0x4f558ca66d6f5373, 0x635afae5b9b32709, 0x7f200dca3a0cd0a7, 0x175fa74a7c99bf47}},
		{X: Fp{0x4f1c905a8351d054, 0x97002b4e6ccc0c81, 0x2e1c2fc4a3aa036d, 0x7be5885d8a5d872e}, Y: Fp{0x37932cccaaa0a840, 0x6d90e1ff69d7b790, 0x62bbe2099b8d6e4f, 0xa00daa4c962f54fc}},
		{X: Fp{0x10584a98c0e90357, 0x516b2e4c5ee9c208, 0xd998c40c65ebceed, 0x6f92fea19f3ebe83}, Y: Fp{0x48b75b849df1a97f, 0x57c612cb06ac5c7f, 0xea83b38456ca64c0, 0x41ca8b6a65da4ada}},
		{X: Fp{0xc1f2474e2791baa1, 0x5cb89a280e33e36e, 0x841edd119654a206, 0x359333b24f3cacd9}, Y: Fp{0xcc1bdb7815b7cbfa, 0x7bfd7e185ce1f80c, 0xcd9a520d958b88bc, 0x88220dee77fa2b86}},
		{X: Fp{0x91c7a979fbefe400, 0x618ac5432a56cbd5, 0x0d5fc20962c905d6, 0x83b3b3e758d01a5a}, Y: Fp{0xc63f19f2c64a0a0d, 0x3eecd36a3be92648, 0xaa75a7a4cc92365f, 0x0a9a7d993e3fe4dc}},
		{X: Fp{0x912dfbe89263b285, 0x278717952fd7ff09, 0x873d3adaa6bf6f25, 0x7ce6816bc31424dd}, Y: Fp{0x436e909038aa9ddf, 0x7a1fbb198a9b1344, 0x9c0b08360cb2f487, 0x02183d6df4c9b365}},
		{X: Fp{0xff68729154a01a0a, 0x4cc48c85d3db8d71, 0x9b805c03086e2bd1, 0x9f892f2e312eb6b9}, Y: Fp{0xdf15d808234a6e20, 0xd1770726b59e8fb8, 0x43465c6ea4f3bcd0, 0x236ba787514bbcbb}},
		{X: Fp{0xd311c93d246a4196, 0xc61eb37447316ce3, 0x7d76159c425e1552, 0x83204a632e12c202}, Y: Fp{0x16c476bb3d364ff8, 0x2d18d1e1816290d1, 0xfc91369d8028dd8f, 0x0ab4246fa2bb5ad0}},
		{X: Fp{0xc43dcb0e23359cc9, 0x9b2462f8b5f4dc28, 0x769494635f404534, 0x1440035fc5204779}, Y: Fp{0x5dad22a34cc5de96, 0x3adafec1a607aba6, 0x7897afbff98c46c6, 0x027a9a3a3199d289}},
		{X: Fp{0x7bb7ea70b1351fef, 0xe0ea104ff5a08848, 0x215292dc45dfbd7f, 0x2df761fc96e08769}, Y: Fp{0x47e018307679929c, 0x3e7c906990f7c63b, 0xcc8b8e4887a00af4, 0x8e3cfa1cfd32f3ec}},
		{X: Fp{0xa98683219a80c700, 0xb53f578d15c12b61, 0x795f82dbad1facca, 0x09defa4040020104}, Y: Fp{0xb1b32132ff203b1d, 0x1d3a4b37cad0c0e0, 0x11194f0e35bdb062, 0x123ed467f54fa0f0}},
		{X: Fp{0x38aacd2fca29e3fa, 0x19d98ae928ad935b, 0xa9adfe16c50b27ff, 0x1d42b0d6c6c56bed}, Y: Fp{0x62c0363d90aaa767, 0x806575590dc24c1a, 0xe6690ff2d5800cab, 0x9b3976eb67bf0ba9}},
		{X: Fp{0x5370d0e4802f3207, 0x8fb82bc228922170, 0x306ec00790ad5e32, 0x9f7598c0f36b8cb5}, Y: Fp{0x42174d0292bab5ac, 0x29508db51dddea2a, 0xb73f9bb85325981b, 0x8039f88a39b4bc20}},
		{X: Fp{0x823f6ea0eb04a7b4, 0x79532cfdb3e1854f, 0x0ca1043cfc6a438a, 0x920488eb1e519679}, Y: Fp{0x34f8c6a0659a4237, 0x74c965b4deed85ee, 0xe6b17c869e2dee71, 0x901b2bfe4239a7c9}},
		{X: Fp{0x29aa565816ad3163, 0x3ea9920def7f9614, 0x50f443ed40808e38, 0x4bd15332d35cab4d}, Y: Fp{0xdd14149d0b505326, 0x9739d7ed8fcb8bed, 0x7bc3808e1354f269, 0x85652e25d56185ff}},
		{X: Fp{0xfea402a4a34e1d34, 0xb4f0b75d2d0c2501, 0xca68454d3b113f90, 0x8f0b882be16f53e2}, Y: Fp{0x18d238ddce25d486, 0xd7f95266ac6cbec7, 0x59026b6e39082d5f, 0x77c80c64d3ba12e5}},
		{X: Fp{0xade806672b309794, 0xc172c3fecf04f78b, 0x089e6b0b67fe3940, 0x50892adabafd840b}, Y: Fp{0xd7bfba3380edc665, 0x0a7ff8f3d9417429, 0x026fec3f746a2ea4, 0x52f85c6a0ee006a8}},
		{X: Fp{0x2193ed376fdde551, 0x69fb171b61f8089d, 0x276837efcf438774, 0x12260fb0dd571c79}, Y: Fp{0x9e805ecb52ede8eb, 0x30ed9dec87d090a9, 0xa51784c4267220b2, 0x16b5621fc7830656}},
		{X: Fp{0x705c770335ff328c, 0x079e78f5835f6b25, 0x03587b90e5f196f9, 0x4de268f88bcb6741}, Y: Fp{0x1c047afb226b4ca0, 0x7e1ab133ec5afa85, 0xd4a93c75239ba4a7, 0x13ce98d50de9d737}},
		{X: Fp{0x1a9e119fb3d40408, 0x8f2349cdf2f1eb5b, 0x7d1f818fa5876163, 0x5b51290955c4a485}, Y: Fp{0x9b540bfab274b3bf, 0x9025afa716d5969e, 0xf181d23d216b5731, 0x854682f5962649cc}},
		{X: Fp{0xd00263bf476e1949, 0x03ae7a00cc1f7675, 0xc914e87d8db47a9c, 0x4decbd8034d3d987}, Y: Fp{0xf606079c716ff0bf, 0xad40d6d3fe66e79d, 0x6a75c7e6186a2304, 0x934738f4f03ec49c}},
		{X: Fp{0xb820be38c2a3e746, 0x3033423fd2997a0d, 0xe9d2517391923b10, 0x79fd3d101cdc216e}, Y: Fp{0x69cd91e12640b8dc, 0x155d0ed952ac0112, 0x01b3c8ac40f6b4a2, 0x6e93b93b5ebd56c1}},
		{X: Fp{0x0ef7f06b6b953dad, 0x7c824df8495322e0, 0xa9081fcf0ea8c011, 0xa5f3a3b6da1e326f}, Y: Fp{0xde2d7ed2406852ab, 0x22386ffe69e7bf9a, 0x7251a6ae12b49bcd, 0x67e9e060e4da0caf}},
		{X: Fp{0xf003873bca2cd454, 0xed397c632081ad82, 0x4fd3662b099c9891, 0x17f38e321774d482}, Y: Fp{0x4d19c7641a4b9867, 0x1e6b06b2175237cb, 0x7415ff526aca6858, 0x06593844c8a619c0}},
		{X: Fp{0x00125c35459642b0, 0xd8f4334dfa33ca82, 0x8509583fe556d1db, 0xa0e8f88cb2b6f087}, Y: Fp{0xf998856778bb7a74, 0xe50335dd10567ed5, 0x54bc10eaa4833204, 0x1082852fbf914cbf}},
		{X: Fp{0x75cbd76341ad6dcb, 0x4db6b5afb7824f6c, 0x1a6cd0a96f922c09, 0x66aac0c572ae7c1a}, Y: Fp{0xe27f19074853c7f1, 0xfe8628b7ef170aa0, 0x512b0660ca4e5a1f, 0x7bfb6ca3295273ba}},
		{X: Fp{0x93cc499cc5899bdd, 0x199b6801658f1e4b, 0xa797c31b0bb90b26, 0x30adb2051f2d0e26}, Y: Fp{0xbe2d1afc4057383b, 0xe53506bf0a079c5f, 0xede7327fc081f9f7, 0x62685575dfb9e0cd}},
		{X: Fp{0xe70e7682a308d221, 0xf3f9e2be55908dd0, 0x65b362e904999496, 0x8b17d8c79841698c}, Y: Fp{0x96c414c5ec3a4af4, 0xaa116e52c8cdc9bc, 0x9743df129dadeadc, 0x8549f8ebb89f4721}},
		{X: Fp{0x9f6e2b49558d7a74, 0xdf097722381cc087, 0x4cb698e917544d51, 0x1ed84849ad794a26}, Y: Fp{0x348fc6affd08e9ce, 0x1a8f198e2146ccb9, 0x90458b4142129f7e, 0x6aeff8393936ef2d}},
		{X: Fp{0x1f786eb6c111f894, 0x06ba77487ea97510, 0x97cf192b897a5080, 0x31bd648a7472df1d}, Y: Fp{0xd9b97c556859a143, 0x28c00d443eb02baf, 0xa05efdb599403d3d, 0xa41101b5892f3307}},
		{X: Fp{0x0145d29ac9fcc608, 0x2359f544c8d89aee, 0xe40c889a7736032c, 0xb51e6efb1c480e13}, Y: Fp{0xf57f32bec7065c0d, 0x5277ed925228c816, 0x2177b1d15f43f66a, 0x6fddf9bbd4efe745}},
		{X: Fp{0x8ea4c9fef1853a82, 0xb87bb202f0dc0bd4, 0xcd271d6dfe6d925a, 0x254deb706c5c6173}, Y: Fp{0x29d9c3a818e5f194, 0x5cbc10bd8ffcd7be, 0xb7ece4d5a4d03856, 0x2687fa438c0c9a27}},
		{X: Fp{0xdf0e7f29c10aa992, 0xe99975a7de84f89d, 0x2a189fd13c59c2b5, 0x21269feaaf30cf1a}, Y: Fp{0x54795fdac3e7f7b2, 0x182de6969a64952c, 0xb3ddd3db63abc145, 0xaa5171493593592f}},
		{X: Fp{0x7b33e38120fc520b, 0x81e186c84c657bc6, 0x12d65bb850657a16, 0x05325b1c52d791db}, Y: Fp{0x0ac4fa0a7f0230f4, 0x52b25ea053a0636f, 0x26ac00c62a54f2ee, 0x6dbe1193a48c7c4d}},
		{X: Fp{0xee4e2153740de130, 0x018c57e6dafbe784, 0x1889f9321af45da7, 0x76ecb56cf29e03ef}, Y: Fp{0xf9b29d515cc4d236, 0x93213cd7d3f9f767, 0xeec76a4b3ee25a2a, 0xa0a89a9f20c52717}},
		{X: Fp{0xd8a677b21bc7014c, 0x7e0b4904f163441c, 0xc3dc8bd25742e15a, 0x4476bbe322153765}, Y: Fp{0x8c7086adfd35ac71, 0x89198880b2e2f04f, 0x4b0c3d97e819828e, 0x4041a1bb88cf90ea}},
		{X: Fp{0x9cdd7194b1b29d87, 0x1e74f550b81d3bc1, 0x8d45deb8707c4bba, 0x3d2db267350c9850}, Y: Fp{0xc66d8f9a3f3a1523, 0x338e5e2493a8458f, 0xac1882b6c66fe182, 0x977d4d9d99d0af86}},
		{X: Fp{0x4872fd9ab4f47afd, 0x5a207c9611ac9b02, 0x7c17e09140ef277f, 0x1b8c778442d6207f}, Y: Fp{0x7e2bc80f8719bb29, 0x00255742e6f5e7d7, 0xe5be2839602f6c73, 0x55b1ceea683d9ba5}},
		{X: Fp{0x560dd88333cfb88d, 0xbe51eb24537a6720, 0x482a4969975ea9ba, 0x737e395f099057ca}, Y: Fp{0x74c964ddaeffc26a, 0xd6e29918af719f2c, 0xef83bcf6aa33ab03, 0x7c1e1c4992d41970}},
		{X: Fp{0x71c4aa931dea563b, 0xfd245622ff14e2c6, 0xd598a829874e707d, 0x56c75c4f94f8e1eb}, Y: Fp{0x5be4e6e663d281fb, 0x27afc0dd2f97b638, 0x58ebbf962223cabf, 0x9b578bd068cba749}},
		{X: Fp{0x9f0a67487bae5939, 0xbe6f437c35abe9c4, 0xfdd9acd8702d5c66, 0xab3da53e54e0b9d0}, Y: Fp{0x3a3b2be545ff468c, 0x882b7c62eb6adabb, 0x2cdba73857925894, 0x5e57ae93f862205d}},
		{X: Fp{0xcfedb00141f6dcda, 0x945a4037d5e08644, 0xd22b031854cd9f95, 0x102a12c899854f20}, Y: Fp{0x3cf0d44a8548b140, 0x552a6af32b7d6f94, 0x014902bf82766be0, 0x2f5b6bc11f8a7a58}},
	},
	{ // i=19
		{X: Fp{0x76e2280b75dbf72a, 0xc5ee1ce0a63e047f, 0xc57ed37daa9c4900, 0x222e5a961040eb5f}, Y: Fp{0x6484790a0b5db840, 0x585a3f45b0853b83, 0x2b96b16bd244ccd6, 0xae2b7891a870d1c2}},
		{X: Fp{0xe1dbdbc750b01552, 0x77c3d8e56e54bc04, 0xa4746d7c88caa07a, 0x862a220ea6061385}, Y: Fp{0x0a24002a0b141e10, 0xa11d1a725bd76e62, 0xc63efe8ead6152e5, 0x174dee2c8cb2ba07}},
		{X: Fp{0xa3538c1f252e6001, 0xd233b9842a357671, 0x3b1766fb31372a2e, 0x11bd7b17390bdde5}, Y: Fp{0xa175214b1fda486b, 0x352bf48686002eb9, 0xbb67725922e50a45, 0x2914c9e7f1ce46c5}},
		{X: Fp{0x91fa34fceb4fee07, 0x845654b61b908c90, 0x7492d3b2b991373e, 0xa953c7dd7ed1e045}, Y: Fp{0x366a5c852d9b3a50, 0x991e085d95843435, 0x1d5bc8cdf24f64d6, 0x2b4fe9147b3fe8db}},
		{X: Fp{0x08fdc71a273fe0b3, 0x409dd7c0c4ff71b5, 0x2183ee867a6cef7f, 0x948063fd00944f22}, Y: Fp{0x9bfec47e0290c536, 0x1e34b0ce55532bfa, 0x685fdd6a07327faf, 0xad0612d5a78a775c}},
		{X: Fp{0x46357b4cf815aea7, 0x0a4682d48a4705d6, 0xa7778007a99916fa, 0x8dd3d0b412c3f2f8}, Y: Fp{0x7b9cab3584192ace, 0x3abec392eeeb2f78, 0xb03aaad5cdd4d6e1, 0x917106550755e406}},
		{X: Fp{0x3200093335c03601, 0xbd9325c545d72d3c, 0xa13312a38e84338c, 0x5ab05240489b32bd}, Y: Fp{0x2a22c424cd9da32f, 0x6034d0eccf00ad72, 0x0f592bf785137c30, 0x585833cb31120496}},
		{X: Fp{0x85d57c06c9bd0783, 0x6c925edd78dc2e1d, 0xcfff52fb05912077, 0x2e5212d4dbbadf03}, Y: Fp{0xef018ea011f1bbf3, 0xd5e404ba00d6fa2a, 0x3b75ba307ddac1cb, 0x7c06dcdc6e2fd892}},
		{X: Fp{0xe5180c02ceec760c, 0x0652a2d6ff02e06c, 0xde5fd648162e204f, 0x3f8ed6bf9c4bb6db}, Y: Fp{0xf37d56233f1122fb, 0x0097c0e3904a4977, 0x0ef05023c5534618, 0xb11e16ac5faecdbf}},
		{X: Fp{0x746eeee4d1689167, 0xcd261e6a5dd3d7ad, 0x4021c9ea2787bfdc, 0x5c07cbacd1462e9f}, Y: Fp{0xe8d6dc9bbf082bb8, 0x7cd2c6db4ce7bdf8, 0x484da105c80a2d1b, 0x0785279a983a163c}},
		{X: Fp{0xefa637a739597e96, 0x1c54324cbdc1af6d, 0x5124cffa166130df, 0x096eb1872637d902}, Y: Fp{0xedeb66a3a21fee21, 0x34470c94cf97a07a, 0x5b41219ac7351631, 0x2abd9613babde9a1}},
		{X: Fp{0xd51de489ad645060, 0xf4b1c6512121041b, 0x708cf85584dec8cf, 0x8ad63bcc9095a87f}, Y: Fp{0xa73201ef0e0a4216, 0x405fa88fe757d5a7, 0x4d896663ea4d0806, 0x552977a2ee6588ba}},
		{X: Fp{0xaee7e011ef819cd3, 0x748ca62bfaa1baaa, 0xe1a6934f168f5eba, 0x43ad9eb93b2e2ccf}, Y: Fp{0x7270411077db1902, 0xde6ff6a5aa5402d7, 0x8c7379b451bd6722, 0x4b156a040a12a543}},
		{X: Fp{0x63e803b6ff85085d, 0x214274adfa56cf1d, 0x44327641ac21470b, 0x62685c777341e700}, Y: Fp{0x1a086c4387e770be, 0xc595003ef4df4793, 0xda46be4e2011a3ee, 0xb4001cf1f9d4738c}},
		{X: Fp{0x0ba49ba939b6ea0d, 0x3fa5a8e806efcc50, 0x5831f880a78ea080, 0x979d96fc7b19a902}, Y: Fp{0x00a3782ed5ac73b6, 0x5963d3ea1e458265, 0x6bf8a9bd35f3750d, 0x2459cda787c29452}},
		{X: Fp{0xd9b2a4a7f66cb120, 0xbfa14f9dccd48b2c, 0xdc90f64eaa0bb238, 0x3aafed27cc9b696f}, Y: Fp{0x14dedeb8fec8b239, 0xa1761f6a084bb1bd, 0x13c37fdedb33c43f, 0x6a9b4f8652fe8979}},
		{X: Fp{0xbcaa58a29c9265e8, 0x83f496ae91c336cd, 0x4e55292291ae20d0, 0x2bf3e34619eaeeaa}, Y: Fp{0xfdd69cbebe877144, 0x906c98f2574b306c, 0x32800737570627f4, 0x9801c9d81cd8433c}},
		{X: Fp{0x5f923ee5d70fa98a, 0x381c0a6d0054816f, 0x0523d97f73af98b2, 0x9e4aad4d0d032b81}, Y: Fp{0x91e37aef561dd3f9, 0x193ea609a3f8f028, 0xe6116bf8556434ba, 0xaa5982ea05e9056f}},
		{X: Fp{0x43fc46f785eb3a28, 0x090316701632949f, 0xb86f9994560a013e, 0xab1b4decb2715de2}, Y: Fp{0x05ae885963cd7c1a, 0x55d62882cca81d77, 0xa8504d3a211ab700, 0x67b740a7d5335f6a}},
		{X: Fp{0xad1ec52e9b66f578, 0x20775cfc764ca3df, 0xcdf29e5343cec38f, 0x7d9281c70c4b5e11}, Y: Fp{0x514de12a56f7702d, 0x944309658833c69f, 0xe9d18a82cade5183, 0x421cad2aac9f837a}},
		{X: Fp{0xbf1e46496fbf6849, 0x8bc8d1b06d330733, 0xe06f5e6cbd05d114, 0x7e3569e31faf1740}, Y: Fp{0xf4fbbf8cb8179e9d, 0xc31170d98131c2f9, 0xd3ad64c1a683488e, 0x6615c05f1ae2fbfd}},
		{X: Fp{0xe5b207c181a29045, 0x943872314830030f, 0x4d27131a9d898f79, 0x20d111befcd452e9}, Y: Fp{0xc94d3f39c3d2acd9, 0x5e20d322af82c9d7, 0xaa88a45471c0f821, 0x8ea9e59733b71721}},
		{X: Fp{0x94348259ced20e72, 0x5af56833adb76224, 0x3c3ee89507ba0e1f, 0x83ee62f00fae7d8b}, Y: Fp{0x8f71bb93a300e678, 0x1f32dc43d2baf771, 0x25941fea1281e41c, 0x6cba3bb2daa8262a}},
		{X: Fp{0xebb9b5d6d3ba424c, 0x8ba09814d49d5a0b, 0x56af81fc3537f2e1, 0x3ae78713ea0ec33b}, Y: Fp{0x4bd41d9ae8dae35f, 0x8b0436e62ceead90, 0xb6e95031a3d3f532, 0x358f7212b81756b7}},
		{X: Fp{0x521cb9599aa1dea8, 0x34daa9344f872238, 0x28cced8a0749827a, 0xb3b25ec6ba405941}, Y: Fp{0x6a2713e42fc2675d, 0xa26da844af4ed3f4, 0x5cd33b45b092b65d, 0x2020f3b5750de9fe}},
		{X: Fp{0x53c7b9209723ae8a, 0x51f583c538151c54, 0x66a03f972e2ca329, 0x86284832015eb70b}, Y: Fp{0xdea9946bd963c084, 0x85df07b543a54f9d, 0xc00d88854e6f4215, 0x6b04a327447b09fe}},
		{X: Fp{0x7937e9be2eae4703, 0x02298196c543e089, 0x93cae7d9e6b76872, 0x93d3eaef13c10993}, Y: Fp{0x961d287fa06f2398, 0x9ff5e700e5223291, 0x80af681ad32bbc01, 0x973e07532677daea}},
		{X: Fp{0x81c1381b6b260bf5, 0x9d4e80fde9ada8a6, 0x57d56944d93de1a7, 0x604a04a8121820bb}, Y: Fp{0xbcafaeec8298ae6c, 0x1bfb1ccc3b3ed6db, 0x69120af56a6a940d, 0x50b2b8650166c482}},
		{X: Fp{0xf7f070f26791fb5b, 0x6dc2edd6ba4ce77e, 0x79f3f8a0e975983d, 0x574740509f5957da}, Y: Fp{0x6ff0cb904ecbde83, 0xd423cd7cbefab8a6, 0x829d0e95f107ae4b, 0xb5eed833199a3666}},
		{X: Fp{0xdb51f441fe91ec20, 0xac2f8d0c9b35b392, 0xfecb38ef629d6b3a, 0x4e849d8cea970f1e}, Y: Fp{0x7fb3b654e355fbb4, 0x95a66d6080f31d60, 0x897a302f1d1ed6b6, 0x6ef991cb5d7fa684}},
		{X: Fp{0x9ec19c3ee5519194, 0xfb926ecefcac627e, 0x145c5bac0db4db0a, 0x2b0b8d1dd9a8b60d}, Y: Fp{0x04571320e1059626, 0xcf521de90a8696e2, 0x0cde9822a60f1ae2, 0x73b43a881ee4d500}},
		{X: Fp{0xefc6bc8eca7b4ef0, 0x8ec6e8b61bcf246e, 0x3269d1dbb66defe0, 0x740686d45378da7f}, Y: Fp{0xbd188a39dbfc2e3e, 0xff265c4e53bf2da9, 0x615cde87f03e99d4, 0x56222ff0654460b1}},
		{X: Fp{0xb5a6116261201d44, 0x24c507f97f2d59f3, 0xaa1c01d2be4a9d8e, 0x6940f322ea14e4b1}, Y: Fp{0x40e30d8954862909, 0xa0b8f66a4ce050ea, 0x71292d227fc9a473, 0xa9bc7c9856e938e1}},
		{X: Fp{0xa394db271f6e47b9, 0x7934e878da624e81, 0xc2fa5ee9dc7beaa7, 0x8fffa0308b38b0bc}, Y: Fp{0x28c3b1a2623a5e18, 0x518c2cc78e257bba, 0xd13dde14fca7515f, 0x8631b176dfaa3a53}},
		{X: Fp{0xe6f4dbacc2dd733d, 0xbd2f37b550e484f8, 0x86f94a70834efabd, 0x77169b1c6b6ea4c3}, Y: Fp{0x09f165ac0807da3a, 0xa4d98cffbad717e8, 0xd1e1ebeeed78c69b, 0x9867e429db85ee28}},
		{X: Fp{0x42e22c796b1a0247, 0xaff0b627582675b6, 0xbb619ccada4f144f, 0x2dba145bc10f1876}, Y: Fp{0x1c5a08aafe9471c0, 0x535a85747911f0c7, 0x383cccd3218adb6b, 0x5d584b2cfce17270}},
		{X: Fp{0xcb61aa3d99104cc6, 0xb274f60c867b3fb6, 0xc8d8ef1c32db779c, 0x5394b0928fd93c36}, Y: Fp{0x299380cacfe282f9, 0xaeadb87375fdf1a2, 0xbcf0d644bae3f08d, 0x87045f9cdbb25c9a}},
		{X: Fp{0x52f5fae178841d03, 0x0d15b3d3f620169c, 0x745c1641e9f04495, 0x1d00d86e170b8890}, Y: Fp{0x4030b809c54202c1, 0x6e38c1b3c7ba9250, 0x17bae96c880765eb, 0x5f6275b5ebee7739}},
		{X: Fp{0x49a92c528338545a, 0xc26080b9179ff550, 0x24582cdf5097ea6c, 0xa2011a5846d36c6d}, Y: Fp{0xf3ac755f01422eb4, 0x4f3f302a5a0be964, 0xaa99c303730141c3, 0x8ee69fa8024077ac}},
		{X: Fp{0xf76c112f0f9cabb0, 0xe5271c1280f41ed6, 0xa1179a13dedd4b83, 0x019687af4072648b}, Y: Fp{0x0da43f310c3e2332, 0xf4423f75ad5c9bba, 0xc5bc4b885a882cb5, 0x22308fad4d2bc1ab}},
		{X: Fp{0xba501313557151d0, 0xf933106210b33797, 0x9410b5153611b607, 0x26a80eb4fd88acc1}, Y: Fp{0xbdc60d9bd5cf8f9d, 0xdde4f27bc6e8fd5d, 0x641de2a950681afd, 0xa756e95fb1e138e9}},
		{X: Fp{0xa3c69523c732718c, 0xaedff002111948e1, 0x4cbb94dff77d0d1c, 0x9f63b85bd1daefc1}, Y: Fp{0xae0b62806c77872c, 0xdd0186c5fcbdaed9, 0x2466254f511f5329, 0x3d1c8a644cc59f48}},
		{X: Fp{0x03e5eda74b45aa5f, 0xa7c09001345e0fc5, 0x36ab01a5152dd2ae, 0x8bcff26e37bac94d}, Y: Fp{0x4be56b9d651d69db, 0xbf32dac5d9b1bb4a, 0x6568ec2d8fbced14, 0x7c62183103e7bc60}},
		{X: Fp{0x04eff49ce3e8f8f2, 0x75a619389181b212, 0xf3e089151fdf4b11, 0x02ec6a6591fdb221}, Y: Fp{0x9e69e849529ecb9e, 0x5c69b685c722733b, 0xe207529b1cc25156, 0x2dee4ca7c04bc74f}},
		{X: Fp{0x429f50ab95ab8964, 0x5ffe1eb0d52f9781, 0xbb5aa35b080c616b, 0x4be77c8894ea077c}, Y: Fp{0xd54cc606b58fabe1, 0xfc17180c4b0be19b, 0xd778c9f9f97eb73a, 0x25581a2e2fca726a}},
		{X: Fp{0xfa539b0e456a89a4, 0xf4443769b4d8b95a, 0xec7a00ec99489fe4, 0xafd2fff3437c62cb}, Y: Fp{0x02896299dd7d48ac, 0x1e4f96e421bb1ff3, 0x0960bf180a01878b, 0x7ed7ee06df92b1ef}},
		{X: Fp{0xd8eb6349214d2c0c, 0x5a00402d1162c2e8, 0xd067d0b0645c8e07, 0x5c0df2b1416de469}, Y: Fp{0x018bc20ec330bc92, 0x96d2ec8fd0840a9f, 0x8f3040b1c2fc4d08, 0x81e6fb8c7621f1b7}},
		{X: Fp{0x76b665bd07120ab4, 0xfa7d5af716a5127d, 0x8ba51b373932dd94, 0x430f740b462fd234}, Y: Fp{0xf32bb30db684d766, 0x6753cbb8e0f54ca3, 0xe64eb1fbfe9f6956, 0x7e44291326b04b51}},
		{X: Fp{0xcf81f706a3612c75, 0x11f362ec233710a8, 0x8ab193b4d7c8faff, 0xa107bc486cd7518f}, Y: Fp{0xbd93260af309a71e, 0xe871d83803223017, 0xb182078d3fc1d3c9, 0x3453b62a41326f36}},
		{X: Fp{0xe238bfeff5185e00, 0x3e334ab540f0dcda, 0x51240a48146433cc, 0x1b1e376b79d62158}, Y: Fp{0x8b935254b62fc793, 0x2aae5d9d70b1bb76, 0xa9cf1f165f9f115c, 0x2be0649afa7b52be}},
		{X: Fp{0x8323cf0a85e55736, 0x91d12eeb9ba8d8d2, 0x178a2bc1b42592e4, 0x6b1d863375cfd7c5}, Y: Fp{0xd1ae1ec9c5e1c2be, 0x6931b336ce51b8ba, 0x155954f054da0c70, 0x4e73fcc3fb58b230}},
		{X: Fp{0xe1293cd37e6d7128, 0x5078af22a2756cf9, 0x778f4b15a1392632, 0x039ebfad06c8cae9}, Y: Fp{0xacd15403d4c95e2e, 0x34b989714f67f0c4, 0x6320679012f6d772, 0xb582829afb4f1599}},
		{X: Fp{0xaf81a86de4fc6f59, 0x3ef6321412d7ae96, 0x36cc3ae069745f09, 0x6d1317b00b5acca8}, Y: Fp{0xa29d6a7d2ce0c9d4, 0x2e58cf619753fb70, 0xd5c997ed6dd0eb56, 0x1e664c189766ca1f}},
		{X: Fp{0x61a33c92ab267c2c, 0x2a21f3c09ec0d099, 0x16754ca3d65dda65, 0x9b657367b9330b90}, Y: Fp{0xb62c214c5e556e77, 0xc34f6f41a6ccf8d0, 0x014cd0c6b79bdcf0, 0x5f54198a7779178f}},
		{X: Fp{0x8be11d2e199e4cac, 0x9b8dfec99e5fbc0c, 0x22e72bae7485c9b8, 0x6d93880dc5bf38ea}, Y: Fp{0xadd1afb35e2a030a, 0x90eefead09413e0b, 0x0b4f86cc58b78b49, 0x9271f7337ff473f6}},
		{X: Fp{0x1df6fe6e3d505c7c, 0x1dfe7200cee2876e, 0x1da163d281c7714a, 0x879939f0a46f6dba}, Y: Fp{0x437123c086f3693d, 0x997029c87f3749ea, 0x8de023a4162b17b0, 0x344414d6429cf954}},
		{X: Fp{0x01bc38872c5f3d34, 0x77d3e2fccaead676, 0x55b32ec237683eac, 0x4b789e4bca57173f}, Y: Fp{0xc1ef7a5456848e61, 0x99220330a0a87e1a, 0x20e45ec11123b336, 0x84ec5aa569c2b9b0}},
		{X: Fp{0x0b781e2dc8da6e3b, 0x4bd4447f26555c05, 0xc30ec1327d3e26ea, 0x9adde485cb686ff3}, Y: Fp{0x99c65c7adb9d1d6d, 0x1c5886dc7592f633, 0x660dfd551caa0edb, 0x8f0202b2577ea5b4}},
		{X: Fp{0x4218d571134592eb, 0x154bd3ca1cd7d0e5, 0x85b609e87b02408a, 0x6110287cb7a50f9d}, Y: Fp{0x46bb8fa91eab7f1c, 0x84e5483d6ae9da34, 0x795d8129d618cf86, 0x403d28ae1c0267c4}},
		{X: Fp{0x6222ef831091a793, 0x62f2fa79cd2501a5, 0x29f967dd554e3fdc, 0x119762a18716a0ce}, Y: Fp{0x54baa0d0053f389c, 0x9dc19957be85d06a, 0x5ea68815bc78fd8e, 0x97001446620aa35d}},
		{X: Fp{0x9a87baabd86203ce, 0xa5be3c9cea82f062, 0x8db5f9e50711ebc7, 0x97cced5b731757b4}, Y: Fp{0xfbd4079b0e63c14b, 0x93fac304543ea895, 0xe612f017834aa5cd, 0x4596c3aff1c8fda2}},
		{X: Fp{0x40940a6303dba232, 0xd0831984ffc1bf0c, 0xcfb4dedf5ed5b1fa, 0x3266c9b929a59fbb}, Y: Fp{0xea59c13506156d83, 0xe0a309769203ed67, 0xd69ddf106af5953c, 0x57ef7c1cd669b333}},
		{X: Fp{0x5fc4a6fe076607e2, 0x80c0716f7f16e8ab, 0xcc928271d5e21886, 0x3757a86f05dae609}, Y: Fp{0xb7887782cb5e504f, 0xd4390d89af0eea13, 0xccf6d61b5bc0abb2, 0x2df803153a7da42f}},
		{X: Fp{0xf7af11bff1124368, 0x24b710be95b6fb07, 0x446fa40602ec924f, 0x76ddc7c8045a495d}, Y: Fp{0x5f0b814956165758, 0xfff5d7b1fd79c2f8, 0xf1ab94b0cf4c8522, 0xadcd55f6bbd14616}},
	},
	{ // i=20
		{X: Fp{0x72b2d00203e10ff1, 0xd0f826721530fda9, 0x015e78aab9228f68, 0x1b756d6737c71ea5}, Y: Fp{0xd2adc5c8b10002f7, 0xf1fd1880dbe127fb, 0xc13a1ab59f268245, 0x8382df379d839ae2}},
		{X: Fp{0xfd272fcb1e709c9c, 0x34b72a96d08d5799, 0x6517c4586dcc0cf8, 0x21cc20500c6a0f11}, Y: Fp{0xa98ff1b56b51c764, 0x4d64d16c851d07d7, 0x535ced1d94997d5f, 0x7f163d8dc080e5fd}},
		{X: Fp{0x0453aa727c09002b, 0xd0f4a99b046b1c90, 0x5a6ed6c5adb00030, 0x067e2e99c45f8d3d}, Y: Fp{0x46ba3d792ab1160c, 0x9a17a493bc0bae17, 0x03d3dc7ccbead27a, 0x5c1062981a609321}},
		{X: Fp{0x40d30f7bb786ccf3, 0xaa30c1f51fe0f2a4, 0x9c3fd2c7664e8fc5, 0xa4fc86cd622bf848}, Y: Fp{0xdb24fa3df02d69b3, 0xb7b53f500c6a3b35, 0xbcd16f04e969e471, 0x9ae6cf19458aa899}},
		{X: Fp{0x6703f2a5ae30ef23, 0xc9ee6f2b05fe0793, 0xb7792114fe292d8e, 0x19f533beef525503}, Y: Fp{0x03b9d3c0eb0d667b, 0x97945c63c8056964, 0x71b85d6d21fb850a, 0x1c2948750525a34b}},
		{X: Fp{0xeb29887006cb8465, 0x4fcb0a3ef095d4ef, 0xf926b75578c9ee43, 0x015a46896c1a42c3}, Y: Fp{0xf78f1213ede9d178, 0x3b7d9cd1e0f83c4c, 0x10f561180835e072, 0x5f569b0a0d0fb6ff}},
		{X: Fp{0xdf3a0dfb28a364ec, 0xc9452192cca67958, 0xaa04fb47561a64a0, 0x19cdbe3a1d6ec1da}, Y: Fp{0x980c327520c6df8c, 0xdea04af7f8ba6e8f, 0xd3cb807e29d8b45b, 0x0a491cf0306b283e}},
		{X: Fp{0xd663b50e61da8484, 0x6894404808e0aafd, 0x349604eebf974d41, 0x65489bd9009b5531}, Y: Fp{0x39dae319d1f5e4fb, 0x4ae0d2341b596bba, 0x7f9a9c133352016b, 0x13f351765d2e830c}},
		{X: Fp{0x98380d0672ef58f3, 0x39aa883ac89299e6, 0x63b39ebeacc82a43, 0x8b419d3cb8ac0b03}, Y: Fp{0xb8bb4f0157b22309, 0x14052fb079a765a6, 0x86cf2d9a927cb0a7, 0x81ee19169aba2f90}},
		{X: Fp{0xf00e94e43dd017e1, 0x8b0d8ce94838b21f, 0xf79dcc18d4c3f566, 0x8ab67b41beceb0f1}, Y: Fp{0x0e24bb5e25ca3fd0, 0x9cfdc7e7710ff00a, 0x62eaac2bd20fbe50, 0x142c98daf0b436f3}},
		{X: Fp{0x748a2a7fdbb75ae4, 0xb76624aba2157596, 0xde0410b144574932, 0x808011b133b0e74d}, Y: Fp{0xe633b7ceb9582fe1, 0x9e5cf2a97e0c238f, 0x7b7b35e92d2356f1, 0x8119ea947eac49ab}},
		{X: Fp{0xce2382c51210c24d, 0xb58cecd230bdbf50, 0x12f03da2f54db270, 0x47615c5bccb49afa}, Y: Fp{0x0249eb7f95643d5a, 0x5dde3d6700bcaddc, 0xd09d8b41fe6f0e7f, 0x2ac51f6f8a94d8f3}},
		{X: Fp{0xfa96e5291b8f3ebd, 0xa11abf40e6febe28, 0xd9c2f5284d4c3afd, 0xa0ac0bc2965b4bbf}, Y: Fp{0x0f8fa5bb7b71f3e1, 0x4311417d01c3026a, 0x8e72383b95a4c731, 0x843685f68492b0f6}},
		{X: Fp{0x78888a2dc7dc98d6, 0xf9cad3f45be4c839, 0xf2031c96c7bd21e8, 0x69f5eb0948df1406}, Y: Fp{0xa534a3f1c0020c40, 0x7f5e7893da2774b6, 0xee7869bb47462566, 0x8a3de135f0ce2d26}},
		{X: Fp{0x03a045f17cd6dc04, 0x9883e43a518c0ec0, 0xa306e7ce79a06710, 0x5d3f30e92fbbc251}, Y: Fp{0x8974f2b242343434, 0xae51fd5ed05ba53a, 0x811bed8ed7fbb105, 0x561c23b4dbbf2248}},
		{X: Fp{0x128e6d977ecdb4f9, 0x3ae25e90cc1157b2, 0xcc9cd681b501af88, 0x67ba08e3d58cd01e}, Y: Fp{0x6551022d1b206869, 0xdb054d04e65a7805, 0x62b03f812e1bb948, 0x757c5f45b61b03b2}},
		{X: Fp{0xa88bcf0116c42836, 0x683151073e3a75b0, 0x98c10bfb94e8f611, 0xb554d5aab720eee1}, Y: Fp{0x40139720e4cda6ca, 0x386926b170e27194, 0x7f4d21e1fe1346cd, 0xa510e0f94d16b7ef}},
		{X: Fp{0xf9b3e22766c1dcaf, 0x6e91807f667c3af6, 0x58dffbb5a63a1e66, 0x70f7fce6c4d6b312}, Y: Fp{0x1f310dd1eff0c025, 0x4c0cc29845344f3b, 0xbd493219d0d855d8, 0xa633c3dcecc5105e}},
		{X: Fp{0xde54f43aebcc7851, 0xb05b0528d5e9f5ce, 0x844f79331be4f939, 0x0d518d63b3d76cf9}, Y: Fp{0x7a82d6738e6bb741, 0xdfa729b35264dcef, 0xb0683ea8f12d1742, 0x6483b3aa368e77dd}},
		{X: Fp{0x09d8093640d026df, 0xfa4bba03cd258658, 0x10a496e386e2b312, 0x1c528f6f57054168}, Y: Fp{0xc162a327243d9fbe, 0x2ad9a721fa381873, 0x514638821f272dc8, 0x7bb0412e33505626}},
		{X: Fp{0x479f89b6d540a26a, 0x4386608bd6b30b1e, 0xd18ad1a4920763a6, 0x52d10258ab06b70a}, Y: Fp{0x1ebb70efe676fd41, 0x678590174f09443a, 0x454f6a213e3bb7a4, 0x608c7879a6b34068}},
		{X: Fp{0x1bf43381b0bffe7c, 0x41b069985468b2ce, 0xd67a426d0c038b4a, 0x842de574639ff7d8}, Y: Fp{0xdb8a79275d711599, 0x05ad5bb38a623036, 0x0fc92d1da09cbf3b, 0x4098a1f7854d3453}},
		{X: Fp{0xbe50b39495c8d828, 0xabe1b680e7458a33, 0xbb7cf9503b4b6172, 0xab2fc8a991bf6879}, Y: Fp{0x7d016bbaa75cac60, 0xb62d50c30c93c083, 0xd2cf82e7af5de6e4, 0x22581f2544363c5b}},
		{X: Fp{0x1e0fbb69b535f3a4, 0x4f2bda5727b2f7c3, 0xd7d3bf0ac29be44d, 0x0adb02be363b5470}, Y: Fp{0x42e71360ce8055da, 0x55d6c4fc34f5c895, 0xbda528f920cc89b4, 0x5b751ba6fb5c648c}},
		{X: Fp{0xb3a6d487c5586306, 0x02d08a46c127c186, 0xbc946e1d9739962c, 0xac9f70249bdc89e6}, Y: Fp{0x8385ae017235eb8a, 0x0ce165a8a8a68eef, 0xe435ea657cb86936, 0x0a0f77f694c96b30}},
		{X: Fp{0xc7669d47f9c3462d, 0xad13241c2fe817fc, 0x81bd06dba8c7ed57, 0x170cfdac6f511f08}, Y: Fp{0xf00bf208a3e7f76f, 0xff33d90e378bf55f, 0x04c71db8881bf6fe, 0xa91d03758904205f}},
		{X: Fp{0x195a7292af57f89f, 0x05ff4882b0190d2d, 0x52912616040ed751, 0x20354fcb5e3b77e1}, Y: Fp{0x354a77799767e42f, 0xe410a79a64abe542, 0x00b13a049bd396bb, 0xaf94225176618192}},
		{X: Fp{0x6c83d5e4fb1fc737, 0xeaa2655a33c69771, 0x0570525ee8d2f716, 0xb0b2b20b1a0636bf}, Y: Fp{0x73a548b2724fdcb7, 0x4569c380dc7ef589, 0xb87fc8da9aa6f0d0, 0x70dc422e18264a33}},
		{X: Fp{0x55632ed35a616c99, 0x6672160dc0fb23c2, 0x6c8198ae7217c3e1, 0x9c01a936302315f2}, Y: Fp{0x0c9c58818f80a655, 0x6547163e325bae62, 0x86a24f9948b827b6, 0x22a46e3f63df537d}},
		{X: Fp{0x1dadd3f0a0cb203d, 0x2805e4b2e026e30d, 0x089aa1e377d5147c, 0x05c9adf95a4f75a5}, Y: Fp{0xca66b7606bdbc81a, 0x3baf5efbb9d327a6, 0xfa224622a763be71, 0xa4dbd81c360966ff}},
		{X: Fp{0x3139ae65ca4625a7, 0xd813c73cbe0f3c4d, 0xb7c92a09f41ca036, 0xb4859def256c9c9f}, Y: Fp{0x90feaf0883249673, 0xfd80f9f19f6ef8e2, 0x222389abd3c32f28, 0xa74462725ec23633}},
		{X: Fp{0xfb0aa3bd3770151d, 0x4a3504b920d6d952, 0xf93fedc529839d27, 0xabcea5fb7fa004b1}, Y: Fp{0xb7e0a51924b916bc, 0x7d1d2be90931503c, 0xa08a974555fb0d8a, 0x09626b6275e5dc0d}},
		{X: Fp{0x26589d6d76b14385, 0xf6ddc5f7c7a4e31a, 0x3ece28ef5c7bad07, 0x80b7e77807dc533d}, Y: Fp{0x8126759e6e1d4ee9, 0xdbdc3fb03b9a3896, 0x562fe6bb9789ac19, 0x508e8a804b1596b8}},
		{X: Fp{0x3dd252e45c0ed581, 0x60c6315646ebdbf9, 0xd5f65a7644d20e46, 0x9821a4251ce075e9}, Y: Fp{0x3163d9fb3bdbfde8, 0x646981e4b076d2ac, 0x00362b760b3415ca, 0x32fc145f07d2b757}},
		{X: Fp{0x3c6894b3216230de, 0x4e4220573575ee70, 0x466a9df448ec5857, 0x41738bc8ff79d984}, Y: Fp{0x8cd3b5a2f1f3a564, 0x8461865c32151144, 0xbef9c348c639c58e, 0x79c32c63905a90ab}},
		{X: Fp{0xd2c98fe9c60a2696, 0x9f1ae4d6caa935a8, 0xa1a7d6a7b487bc71, 0x396b8884878b98e4}, Y: Fp{0x4a41433fe431db47, 0xf42987856d6435b1, 0xd5636b2106f8b57a, 0x37be7cf28ae8eeca}},
		{X: Fp{0x528b1155660bed64, 0xade5cdf9f2c51f6b, 0x192ad3bd1556e009, 0x3e42bd5f396f85d5}, Y: Fp{0xaafbdc975b81f1f1, 0x77693ed8d1974d91, 0xc6a6b6ad2f9ec827, 0x25e093db8a68a146}},
		{X: Fp{0x1a06fbd45e413da7, 0x9fcb87aa47415095, 0x08e16f6d8f132d7f, 0x7a2c16435ef2bd86}, Y: Fp{0xeb6af5dd123599b3, 0x084e64fecf5574b7, 0x0576379a618e4692, 0x559bd783ed829894}},
		{X: Fp{0x7a488050ab6efede, 0x3a70ba4d56308b14, 0xe9c16a54d9029df7, 0x5134e79252816d5a}, Y: Fp{0x73ee3c5e3d19c48e, 0xda9880d32f9ae7da, 0x7f39e78de7ec4a81, 0x9b158f3c4dba3699}},
		{X: Fp{0x9097cd2b52b27aea, 0x6dd47ab3b682f474, 0x5286e5b2a5bcfd96, 0x19440afd3e5253d6}, Y: Fp{0xa440f004a36c209a, 0xf9ca014dc8d32652, 0xae1b9cfdabdf414b, 0x7d0d24def03980c1}},
		{X: Fp{0xd8d3cd69449ba1b1, 0x639fe3268f899760, 0x4b11c36f4ad6d354, 0x74278f66b6bd1ea7}, Y: Fp{0xce9cfca988109b57, 0xbd50cc8d77a603a8, 0xeb8b4669add2d45a, 0x6d37ad1935eaf625}},
		{X: Fp{0xef7a0bd78730ad17, 0x8ec81fca48aa4208, 0xaf9cac030bbc31f9, 0x47689cb4a4f1af62}, Y: Fp{0x35b9db76a3ee60e7, 0xf1efdd549c64e471, 0x68132816f03f6dee, 0x389d1aa333928058}},
		{X: Fp{0xff1534cc10bdedc0, 0x90fa623c8f2aaab5, 0x8bdaa7b5f43bb8fe, 0x7b60ab8bff5f9004}, Y: Fp{0x626a98fc4ef1a676, 0xe178414b51b86e70, 0x971f37965e75e8ab, 0xafc829904b80b0ff}},
		{X: Fp{0xfb42ed5938c7cb08, 0xf9fa45ec3517432d, 0x7bb45fc7970b7257, 0x4cf1d17579c057c1}, Y: Fp{0x44aa47e9dc764253, 0x7a7a5b1370e68ad8, 0x9e3696433250f151, 0x52a237276d1bc156}},
		{X: Fp{0x922de4e816406f15, 0xfe8df2fa9ee0f5b1, 0x3a6841a1db9feac9, 0x04dec7d1963e0319}, Y: Fp{0x98561c13d945b455, 0x629d3294a873224e, 0x474f6285465c093d, 0x69805ad7951eff0c}},
		{X: Fp{0xd15b2ba1c5f1e552, 0x0bd92b49bbabbaa7, 0xf4e5cd6f0c66829b, 0x30f48f4dfa73eb14}, Y: Fp{0x9618c789e113e6b5, 0x19b250eb61228b8f, 0x204641eea9abf8bd, 0x7f2580121e709648}},
		{X: Fp{0x3d1a5eb92ab9048b, 0x0349701e248fd9e7, 0x5ebc5ecdca24c045, 0x82e142cc635ff280}, Y: Fp{0x9cb57b15c60ea8c0, 0x2b3894f15d755b79, 0x342ec1e8564d3062, 0x6ef5b4f7c2e74070}},
		{X: Fp{0xadc6848467b131a1, 0xbdec40720473bcca, 0x80b2ed8b8d8fc502, 0x0f37a1a9ea23c9f0}, Y: Fp{0x04b2434bb43982b8, 0xf35ddcb4b3af987a, 0x94e7eef245588acd, 0x42b68fdc30a26583}},
		{X: Fp{0xd13d947fe5861192, 0xa308e51fe049e69b, 0x883a666d203e9e23, 0x3491375171dc7c87}, Y: Fp{0x56e8841d3e140b5a, 0x7fb39c467af107bd, 0x6c5ed970845bcdb1, 0x7507f99cf3d67291}},
		{X: Fp{0x4f34dd9f610e36ff, 0x1948c74e92ef1694, 0xd08cfbf1bd556676, 0x4902a9d65ec71918}, Y: Fp{0xcddf5c504853acde, 0x425525723b76aa4d, 0x49cf768dd158e088, 0xb3126a05e021fa05}},
		{X: Fp{0x4505f2e80cd7984b, 0xbc739aee4b41d5cc, 0x2b1055fe518415b3, 0x0b887ce342e7b39c}, Y: Fp{0x21ce73de175f0467, 0x4baf48a4c8445c69, 0x8cb0d44f7083faeb, 0x1dcd451c5763aa26}},
		{X: Fp{0x6cc18df4d91bceda, 0x48c54dffd769ec7b, 0xecbc73b66dbcee26, 0x49edd3d52b727f61}, Y: Fp{0xbfca48ce86d2355b, 0x99540fd6b181d9ff, 0x17037c00ef0aa41c, 0x9e00f6defa2b4887}},
		{X: Fp{0x67f3b2c81f6a6ea0, 0xd023f7d40d162a88, 0x78bf87b2c0304600, 0x0abc3bb0597be77b}, Y: Fp{0xbce89a926e8e459c, 0x9bf8bf87460fb3d1, 0x9cfa3fed47ffcdfa, 0x7720f1d1203d55a5}},
		{X: Fp{0x0a53de09580324ca, 0xed7374ab89bf8960, 0x4ef2e3d25a6fe5a2, 0x0d768333420b35be}, Y: Fp{0x392adeba9016ce6f, 0x44e2d0cd54e726f8, 0x4fc0bc6df596188b, 0x3f06aaccb5301609}},
		{X: Fp{0xc5752fcb02c43d36, 0x5f6375df3959caef, 0x28358838aad6edff, 0x45dee49e57e8b78c}, Y: Fp{0xcd217e1de9fc3f24, 0xcbbdb217191738a1, 0x3a99e03952869ff5, 0x85d73f5b376e902a}},
		{X: Fp{0x73833f336ebdfeee, 0x836bc0c6b7aaaef7, 0xfebee310b7ba3ef3, 0x24f4d4b7edc17365}, Y: Fp{0xf72ef99db96a1072, 0xf241ad25d7d6cff6, 0x106acb76bf674ff7, 0x4d7c3deca52ae661}},
		{X: Fp{0x55daafbebdb647d1, 0x983a32dd77a23e0c, 0x5a67b64a34df10ab, 0x23118797e8730831}, Y: Fp{0x2fda88ffdfb168d9, 0xe88eeab3fc900efe, 0x3e5643e191c15c67, 0x4b279be5e01e66ed}},
		{X: Fp{0xbdd7d4582c715810, 0x161cce1c8fc9a587, 0xb21655e00601fe50, 0x1a4ced93c72506fd}, Y: Fp{0x8bb3683f043285bf, 0xad4e5d7659975fd0, 0xd231542263d392fc, 0x44570ae08a7d384b}},
		{X: Fp{0xa0b54e1082934a7d, 0x9074867254398ec6, 0x6780f7f39bd303b0, 0x3098b5c2417c8802}, Y: Fp{0x5d53ee66b905e279, 0x6c36813d355c0d1b, 0xc814890ee8857ba9, 0xb1fbd1ca758a624c}},
		{X: Fp{0x864082755a628929, 0x0aa0ad363aa40d58, 0x98613c5b36594cbf, 0xb2f2383cde1e86e4}, Y: Fp{0xc65734a142cd32d6, 0xc61f2f16d3bc957f, 0x8da3c9aa31c45450, 0x859f6ca503870274}},
		{X: Fp{0xb4b86189b57fcf27, 0x5e7b04de2bd4f800, 0x7c75a6a2fefde84c, 0x41769d5084b5bb9b}, Y: Fp{0x23881563fcfd4475, 0x32a14696e662c3e4, 0x85167b2e5ca4c772, 0x1718dc395171452d}},
		{X: Fp{0x5fde52915468d5db, 0xe72e67d8b77bc789, 0x66f4b6a9cda5778e, 0x4f8d2f2637b130e8}, Y: Fp{0xcfbc9209f418bc9e, 0x095eb06c946c34e5, 0x08f3af28ba255e72, 0x8c9bfb4e661a3d7e}},
		{X: Fp{0x1afdbf351ba6e373, 0xf5af28dfcfc4119e, 0x0c53e0f135f153ed, 0x0aee06594b4634cb}, Y: Fp{0xcad28984761d81b8, 0xc83b482de62ec191, 0x8eb6c56e233afdb2, 0x5958988f083a52af}},
		{X: Fp{0x23971e35da1e0a19, 0x3e8443729e0187f2, 0xe496ec2ab7167eae, 0x138a3fdc93bc1039}, Y: Fp{0xa681933bbc2f0363, 0xd3f42426e1552f7c, 0xe54acc08f9288dac, 0xa29a05ded9d98cdd}},
	},
	{ // i=21
		{X: Fp{0x9ede4cbb630f9547, 0xf1877370c85fd6e7, 0xf72d4500343a7360, 0x9a07ba7250182355}, Y: Fp{0xc40f8dff8580dd27, 0x32ea7a63f8789163, 0x350384e19a7e292e, 0x16a6f43973c6500b}},
		{X: Fp{0xd72172552bd7aff8, 0xdca22225bec32bb1, 0x7d401ad760297cfc, 0x48f8e4bde9be2e45}, Y: Fp{0xb06bb17cf9ff354c, 0x57af299f47d8036d, 0x30c4b83fae775d00, 0x16f870a78a8b4d87}},
		{X: Fp{0x79c6adff3c8ed567, 0xb0208ea43235a348, 0xeaf8be3c7f774a49, 0x16d66dd22fd8efa7}, Y: Fp{0x8bb8a4faa7d9fcdd, 0x2263f0406bdca483, 0xe007d04e649fb5a7, 0x8efcf51dc8fb4a34}},
		{X: Fp{0x3fe81623cd468f5e, 0xd0e9c1fd4e49cc43, 0xdf51fa6b16806557, 0x99b46cea5c0e1640}, Y: Fp{0x4b10a49677fcf8ca, 0x399497f68355be18, 0x6725f913b97645a1, 0x7324e7aaa6d51b8d}},
		{X: Fp{0x8e79d5dd4ee82863, 0xa2c7f094cc4f425f, 0x04981a91c70f73d0, 0x27333ddc6498f5ba}, Y: Fp{0xd7d408616969c6c8, 0xf42dab38d819055c, 0xd6ae739e11c9e8ed, 0x64fa40296dd5d67b}},
		{X: Fp{0x8969c8ba5ddc6ee6, 0xa96ab803c624d763, 0x326760243c73f97b, 0x68b98793ff01147b}, Y: Fp{0x26b21839a252465d, 0xba490ce6f10ae271, 0x89b2c160e2b3a4ab, 0x184dc9886a28177a}},
		{X: Fp{0x8af9e1561820187d, 0xe277440ac2a4e9b6, 0x3cc5467ae5ae2203, 0x6637aed2e9f2eac4}, Y: Fp{0xda36be478d9f998a, 0xdece232f7f8085f8, 0x109585631a399ad1, 0x6b2915a25a9eeb04}},
		{X: Fp{0x1d56d8642eca1d04, 0x1ac94cffea1a97fe, 0xad1046a882dfcd0c, 0x3f999a1ff98eda49}, Y: Fp{0xf8459cc435b8bec8, 0xb0f97fd68390f296, 0xdd0ab3378165e963, 0x0d3bcc3a55327949}},
		{X: Fp{0xc915960210430585, 0xc86422fcb76271d3, 0x8ed0fd1d1975ae69, 0x218e38e10c48e63d}, Y: Fp{0xcb46728926b8503c, 0xe739acf7d4a0b682, 0xbdb27d27e912b6e4, 0x84a9898b33a5d8e6}},
		{X: Fp{0x5efb270ebb3f3540, 0x3851769b85951e62, 0x7a92223452b83770, 0x929999ca0f48ce5f}, Y: Fp{0x7241847cf80d15f7, 0x2748e2c60650fae2, 0x2c595c24d70c7ef6, 0x7262096e07e3a4d0}},
		{X: Fp{0xb3f3490aa25e0f78, 0xbc486f08a7c8bc8a, 0xbf39d305e25f2870, 0x7298ad34311b101c}, Y: Fp{0xf16eb5639c5df029, 0x9166596f630900b8, 0x4a31376ed85e7937, 0x5edce983ddfadeb5}},
		{X: Fp{0x2304cf169b1e73d7, 0x5e475ce70269cee3, 0xae07cdca0dae91f7, 0x02ef36a4235ecdea}, Y: Fp{0xc7a6843ac72967de, 0xd64d090387c27807, 0x90da3d6b86e677da, 0x83dd0c437df6ddab}},
		{X: Fp{0x1989d364627f656f, 0x5c9a72e0681e2063, 0xfd64c1ba838502c2, 0x160e915edf0c25d9}, Y: Fp{0x8b9679865809ac82, 0xc33790f3a28bd8bf, 0x452aa15b28770b14, 0x23beb3f765111972}},
		{X: Fp{0xc8e7d660144e2807, 0xf401baf856eedf84, 0x22d01678cff5e449, 0x0ab460c24479b657}, Y: Fp{0xf1c22b1eb20abb3a, 0x1ad29c39af002214, 0xd6ca34c819baf62f, 0x20fb747975eaa8cd}},
		{X: Fp{0xc4a1d3cf76a1374c, 0x51d0d4a1c622e958, 0xca4a23382dff9636, 0x9303e82d1f5f5596}, Y: Fp{0x2ca0309b8c4088e2, 0x5d56d94a9dac83c3, 0xc7b660e37eaf446e, 0x24ade63f89300202}},
		{X: Fp{0x76d388271d74aa6d, 0x4bec4f929540f466, 0x0eacf2d9f3ddc50a, 0x7e92ee50c27a3a3e}, Y: Fp{0xeffe90360494bd3d, 0xf94e5c2758356fb6, 0x3be76bda426580fb, 0x8a866d7be391068f}},
		{X: Fp{0x5c74df21372cd551, 0xb32babc963b25b9f, 0x5a77e750d69e80bc, 0xb2426b0b89d8c3df}, Y: Fp{0x09beab7db78e0d3d, 0xf8d2ce7d49f4b01e, 0x5019bc25a941a899, 0x8ab3161a4b028af2}},
		{X: Fp{0x03e8b8a5bc3aa7f0, 0x6e818f3de08923b4, 0x43f0b1b080c996c4, 0x6fbb8b97e152bdf4}, Y: Fp{0x4558c33945dc633f, 0x7303699f5249417b, 0x1539fdf455a43ab2, 0x74f4804dad3f9061}},
		{X: Fp{0x7758ae9338e265ed, 0x56013e926ef9fe49, 0xbdda04a31633ff53, 0x124bd94c192e8ed1}, Y: Fp{0x316a7da396769f4e, 0x7af6647f17c320a5, 0xba3ad1ee7e2b339a, 0xb363b8e0061c4544}},
		{X: Fp{0x15e65d2ca9873c28, 0x8b94db59ee6bfd5f, 0x75f758798a4413af, 0x8bf197c1398c27e5}, Y: Fp{0xf40a6e1d26d31395, 0x4c858f9122f8b607, 0x740cb31b86320e0b, 0x18fe38ef0b9ddb03}},
		{X: Fp{0xe5a871051aa10970, 0xb4d52b731d5669ae, 0xd4eb0e1fc791d6f1, 0x605e7229ead856a7}, Y: Fp{0x87ced918170006d8, 0xc06b3b8c23a246d5, 0xc871b3ed0fb8b6a4, 0x15904ec7d4b28b70}},
		{X: Fp{0xb297bbf2188488af, 0xd71b9e7f5350a27d, 0x07cc596b01787480, 0x19b89375b48d19b6}, Y: Fp{0xa49f5f29e38089c8, 0x7a218d558a07cf94, 0x9708148a04992b06, 0x07680cbb99713218}},
		{X: Fp{0x0067896e87c39013, 0x2ba9cfa522ac6da2, 0xd62e1b7ea3811c2c, 0xb430611228f2ff23}, Y: Fp{0x6a503734db0b9c37, 0xb2acb7ad1f8d0180, 0xf07b79bf014fee55, 0x0e8beaef2fd4da1d}},
		{X: Fp{0x64a70067911332ad, 0xeab6ecfa4316bf91, 0x4a636e9e4fe3e6cd, 0x6934b68e5f86f46c}, Y: Fp{0x369c3b8b13d8c783, 0xbddb0f423b2f7a8b, 0x9e75d4ffdef8f74f, 0xacea71e9d7902472}},
		{X: Fp{0x2c527f5548447cb6, 0xd0e54f0e56c6d15d, 0xe156182a418c352a, 0x97a60b20c50e7cc4}, Y: Fp{0x0a62891100e33819, 0x8ce8850976ca86f2, 0x627dcf7fdb068805, 0x1df8095e19b79a04}},
		{X: Fp{0x3769990b7bb14ab5, 0x2e6a0a2ea0f187e5, 0xf687ecdf1935aec9, 0xa05173ce718b29d3}, Y: Fp{0x1479f62925ba02b4, 0xfd1138da7f10b7ec, 0x0f255c9b58427946, 0x46be672e557b891f}},
		{X: Fp{0x37407f8dce9d0962, 0x9bef402431127c06, 0x6d37e66dacbbe9ae, 0x0bf742f7671b3049}, Y: Fp{0xb3dfed45d87e42b5, 0x78e57e5a2edcb3b1, 0xfb8c56ce06a46af6, 0x00e1db7ae50dbce9}},
		{X: Fp{0xf9a5257433795f50, 0x41365db6aa8ed0c4, 0x26d247bf0be0288a, 0x0dcd832bda22e68f}, Y: Fp{0x33a5ab7c0ecb3dda, 0x514f9d7d43561f82, 0xbdf3a279b8fd230a, 0x7ad45d040ba1f165}},
		{X: Fp{0xe50baafe471f2057, 0x1c25ccdab47f4fee, 0xd5d232f7dc062ed0, 0x80747075ce0d5cde}, Y: Fp{0xbf5ff03261a12561, 0xacf1aea90afef3e1, 0x9e347bcd9fe7e2a0, 0x5c088645cc419009}},
		{X: Fp{0x7dc07872f3ea0360, 0xa718bafc1f66e79c, 0x82378adfe14c68e2, 0x8240693d3a2359ea}, Y: Fp{0xf43a64cd98c2e221, 0x3521ce9ca16e0dd4, 0x9b3a97bbceab732e, 0x7e2af267524b8fc3}},
		{X: Fp{0xd9334bcf700117b4, 0x48ec051a3ed7ca10, 0xe3388c5022e53c37, 0x711cb3f55260fcec}, Y: Fp{0x47e942ce7c8d7939, 0xc6dae4d1a4c3ebbb, 0xdc68764d07c79d9e, 0x362cf0633c257d6c}},
		{X: Fp{0x39b006e16afa0c91, 0x2acac34202a3b6b3, 0xb406e1cd07525960, 0x5fbd49ccf474e378}, Y: Fp{0x693c9d2a3a100fd3, 0x1fd81a4aa99b1e06, 0xafe5e80e76eee8e1, 0x38253a58a7be58b2}},
		{X: Fp{0xe1e71f26ec61d344, 0x433ec56bec744950, 0xa7008259be2812ed, 0x38725b4cca6c0d3c}, Y: Fp{0x0eb889c6148863ca, 0x9fc142f6b99e7acc, 0x4a382e7f0353c1e6, 0xa2c8b7f3c1a1d502}},
		{X: Fp{0xba9934575384edfb, 0x11dba6a083710573, 0x6dfe64586031eb01, 0x516c66ae62c52bcb}, Y: Fp{0xdc8ac15a758b735c, 0xda3a31db2a4e9e1c, 0xaa7b8988608d759e, 0x8fa540596ad94016}},
		{X: Fp{0x034b774f181ceea0, 0xa5bddfb5f711481d, 0x8ede349cbb185161, 0x55aeb95a524e9438}, Y: Fp{0x9597fc280ed382fe, 0x26e1f3361a5a7b91, 0x9cbb46d4d5162ea6, 0x2a68ac1ca718daac}},
		{X: Fp{0xf30b7bc737c0c346, 0xc25c5f3012a3237d, 0xcf8d7818c99cd4ca, 0x168a48f034ddfb7e}, Y: Fp{0x1d1da0ad278da926, 0x85185704dd33d17a, 0xaa0198e9f2971a13, 0x1c8992f438252459}},
		{X: Fp{0xb6e7630c7602d15b, 0x985c05e762a6796e, 0xee658506339aa165, 0x461cecb316ec1628}, Y: Fp{0x9ab07df49f073283, 0x4bfa81668a9daf67, 0x28ad0eec95277885, 0x7ed44831e5df7725}},
		{X: Fp{0x32e61adf0a536b46, 0xb9f0d2622a036807, 0xd2762696f04eab12, 0x510011833ecb4617}, Y: Fp{0x6f41ed803f589607, 0xf0807eb983c45dd6, 0x87a6d8791db0c096, 0x06474616d358dc89}},
		{X: Fp{0x81fdc5527610a078, 0x919916475f420c79, 0x381ac04ece707e7a, 0x4aa4637a95fc3f8c}, Y: Fp{0x67f32c859feddf92, 0xcd16fff3ca18e897, 0x0435c7e0cb655ce3, 0x8232c2323cccb99c}},
		{X: Fp{0x9ac15fc1c5a2cdb6, 0xdeb8378317100764, 0xcf9264e6596fe015, 0x017cd2b21afb4ef1}, Y: Fp{0x4120a9a0cca69f0a, 0xaf6c0118561150c4, 0x67e597f254c9dcc8, 0x089d639bf3f5f367}},
		{X: Fp{0x00db8fab10c1cada, 0xe5bbe3241821511b, 0x04515245252c0f29, 0x6d46a375e3894436}, Y: Fp{0x2ff3703d2c90873d, 0x5a96a36b414def3e, 0x0ad9cbfa3eec5ba4, 0x5ed0201518f68bf7}},
		{X: Fp{0xe6f8105076b299f7, 0xff82a2d4692f1d20, 0xa63137a62d3b8a44, 0x126342f860a75619}, Y: Fp{0x64688e2e15afc25b, 0x9a94a461b74faf8c, 0x4222d7b8767b0092, 0x42314ea7bce28d03}},
		{X: Fp{0xec89b6917444dbc9, 0x59a0ef7837706097, 0xc5fa4785a0115234, 0x883173ec35a1f3a3}, Y: Fp{0x11cc4571c723191c, 0x8df2e08004a99a1c, 0xf1ad81b96b0f38d6, 0x6cf6b51e47db81a8}},
		{X: Fp{0xf5c41c34305ac044, 0xb7ad81cdcfcd6d18, 0xfced81318cb6f327, 0x69f232b094137e91}, Y: Fp{0xbe6bc3c74c7a553c, 0xc917c06c4cde3b88, 0xdad515c410634098, 0x2eb1f05a6993b153}},
		{X: Fp{0x53c21a5081719d0f, 0x1096e32b4f3884e0, 0xb07325fbf1fb7cf4, 0xa72346cae4687e42}, Y: Fp{0x30649779e708c0d1, 0x60c4344f698b9231, 0xf75fc73b4251cfc5, 0x520744430f899724}},
		{X: Fp{0xb85840789fd166c2, 0xd174bd6ddc043a4d, 0x76fa0005c994ad65, 0x51ef46807b863d26}, Y: Fp{0xc62b27dc8605a7ad, 0xb5350e5a2853124d, 0x9ed685b6b38b855e, 0x3239cbe0ecb12ca6}},
		{X: Fp{0x1b1c0d5b8bb52717, 0x60cbcaf3113e02ad, 0xb439c2a293f286c6, 0x9146775d711ab468}, Y: Fp{0xd9af44dd3b0b8f8c, 0xaa2e0e3f33898e17, 0xee16a14161e2c3f4, 0x7f7b91ad44524502}},
		{X: Fp{0xed793f081c1fdc96, 0x9529efb138d439fb, 0xdfc861330be3cfdb, 0x0276606e2d721bd0}, Y: Fp{0x39f3da873abec135, 0xc775d952b5ad1802, 0x40a7cb2585bb18d9, 0x4c6fa25e75267fe7}},
		{X: Fp{0x822a5d08513700b4, 0xd0b2d0bc55141e4a, 0xd3cfb48bf118cb49, 0x44b4ec291ab29f67}, Y: Fp{0x5ccd05e5c8c9cbda, 0xc3f644abb7eb316c, 0xd9e86910856f31cf, 0x79482794c4e97bf6}},
		{X: Fp{0x6dd31c0ee2709471, 0x5d034209ed7f2d69, 0x2827ff398e253d3a, 0xa2c25dba0de6a755}, Y: Fp{0x8a4e73e0f79c9ee2, 0xfd872a138ad186a4, 0x19b075fb1c8afc39, 0x14c2d29848e7fcf5}},
		{X: Fp{0x2f81c7d219335602, 0xfd54970567e2d40d, 0x242e5f716ceefaff, 0x2c4ea5520a2d09fe}, Y: Fp{0x6695c72dec7a4cf9, 0xda4f10e0097e37e5, 0x96853108bb50c508, 0x06983f3cb0b23e43}},
		{X: Fp{0xc818ad164e2e9ebc, 0xdf2870879a56065a, 0xff0e44596441275f, 0x6577345485d565e2}, Y: Fp{0x454fd3740f33c966, 0x00390f3872649080, 0x5cc827f4e4860d05, 0x27bfc483ef902c82}},
		{X: Fp{0xa77638fb7871b422, 0x5307ee8321ca8d71, 0x6e450a2f52c50a9e, 0x8056150c61253bbc}, Y: Fp{0x4f5ba96b23b98297, 0x167c7ecbff72d85f, 0xec526f1ad1ad1206, 0x9491b35e83b76cc3}},
		{X: Fp{0xc053d9cf24fe311e, 0xa721266369096e05, 0x8b078eecd2a8bea1, 0x88679738853d57de}, Y: Fp{0x22aaba3508b7a8b8, 0xb7ddab66fe8f4902, 0x4b5c3966f77a42a2, 0x7c857b9ae8970903}},
		{X: Fp{0x1c627b36acc2b0f2, 0x0fdaaa718164d286, 0xed81903f52dda601, 0x8bc09e5ecb5cd7b4}, Y: Fp{0x2ff14952fd6ebf60, 0xe199992fbf73c6db, 0x6189eede7c04a3dc, 0x294b3f8d29cebef4}},
		{X: Fp{0xddca7ad420563952, 0x980673c331849284, 0xa7668ce50348cc72, 0x16bb1ab40f86261c}, Y: Fp{0x37b6660fc8df51df, 0x2e5036b20c457ce2, 0xf844885aa86f2b6a, 0x42c55bb0a4b8e0f6}},
		{X: Fp{0xa224ab9f503d05e2, 0x7bbf40536b92143c, 0x527d142e83d22c37, 0x033dca5404d23a71}, Y: Fp{0x36b82863543b25af, 0xd3ffc7a6b0a43060, 0xa51ed62876bafe2b, 0x578b74a9e56c0963}},
		{X: Fp{0xdab59906b6e204d9, 0x15c6953aaf08bff1, 0x4554bab16c364e66, 0x91772e74cb97b52b}, Y: Fp{0x0d540f6e436b20b6, 0xb2226b6c9678b5d3, 0xdb66f7c5d8e44d0c, 0xaf6b841a4493a969}},
		{X: Fp{0x784cd736805f915c, 0xfb56832232f9a49b, 0x1a13bbabe666987e, 0x36c1edcf365d7505}, Y: Fp{0x8e5e8c7d8fca4412, 0x6330461a3fb72798, 0xfc6d0df40f653615, 0x217632f5c256d698}},
		{X: Fp{0x3b861f50e1a87de0, 0xc09b4e42cec78680, 0xc08ac523a38ae0ca, 0x664bad6592e17607}, Y: Fp{0xa6fc7594e0954b63, 0xac6a7967bece7a51, 0x1c013119ed456549, 0x3a0565c179a8dd43}},
		{X: Fp{0x3fcfc6fa909a38e9, 0x83c34c43337579e4, 0xcdac12812150fd0e, 0x5f51a29fd205674b}, Y: Fp{0xb4dbca8c9c12a6f4, 0x6ec983ce82274feb, 0xf6ab26bebb6c4d98, 0x0a4c4f7d6c340f0f}},
		{X: Fp{0xc749cc4594b5db80, 0xeb7c441a416bb385, 0xb7cb03388d741174, 0x45b83eb96e3aa5a0}, Y: Fp{0x4b6ec0ce9d074dec, 0xd0368a1ac6a65d2f, 0xf402d9cb6516bb65, 0x4c3934d2ce3f7708}},
		{X: Fp{0xe280b56b5f4fde8c, 0x867a57713857f167, 0x51b473d36d3979b7, 0x0e631a41bb0afb46}, Y: Fp{0xa8a28d6d223e4294, 0xea438f97329ff474, 0x90839ee7c0480e62, 0x56aa1d0602ad9a88}},
		{X: Fp{0x5d7fbcf9df2836c6, 0x3fede4335df28bc5, 0xc12be473a2089aaf, 0x1e8811693ac6c1c8}, Y: Fp{0xfb53a0249edaa4a4, 0x791fb551d8b7e092, 0xd0c54792852c73a0, 0xb08f570f2a3169e0}},
	},
	{ // i=22
		{X: Fp{0x2521bd593ac9ef35, 0xac7388c84d762899, 0xe3dfa6be0d8c6ccc, 0x4e0bb9d2321f625b}, Y: Fp{0xe849678ca9682541, 0xa26b40c3e92f6777, 0x652f112ff30f86df, 0x4d44185634947e5d}},
		{X: Fp{0x64cf8f39b2dfd84e, 0xbe2c6310275de7f2, 0x7dfc2c34559d42ad, 0x1833b7f03a14e6cc}, Y: Fp{0x7a96181a8626b6c2, 0xe5c6706601cbad87, 0xe4552aa63a97b265, 0xb36ff271a67612fe}},
		{X: Fp{0xe2a16b694483664c, 0xb31983308aff1c93, 0x753e007565a7a4c9, 0xa77e68a018cd2cf7}, Y: Fp{0x867d5b9439e85972, 0x71a5ee510a181138, 0x362ce3b6b5780a55, 0x9da16b227292094a}},
		{X: Fp{0xd56dc79d20ff73b3, 0x8619ec40d349987e, 0xc3374683a359a9fc, 0xa07f71b7af191d3e}, Y: Fp{0x37b8c0ab99499683, 0x123b3abff243d62b, 0xf7eef3ac9f4cd91c, 0x4238c0122ea4923d}},
		{X: Fp{0xf16502125dd8d869, 0x9c8d48a4337e74ba, 0xe472e65dbde91c23, 0x18b7d8dfe0b1b867}, Y: Fp{0xc52d6c84b060b605, 0x9f9c5a8d323acd81, 0xd1b3a8c007f253bd, 0x5c3ecb95b51a0a3c}},
		{X: Fp{0x392d717334f03ef6, 0x772da80586a403d7, 0xaf2bf4078fcf3850, 0x66c51941fd11e0e0}, Y: Fp{0x6bc0aa5ff01bad21, 0x90e08d61427ce72b, 0x6ac01fea5aeeb4b5, 0x62e91f7b6a3ebb79}},
		{X: Fp{0x1e25d5969f227f85, 0xbbb967735c3d130b, 0xbf900d33f3db7926, 0x2fded645e9ed2a32}, Y: Fp{0x169f922c06cc8e8d, 0x6d81cd9046ea55fc, 0xeedea04af4d0112f, 0x592334baaef9e32b}},
		{X: Fp{0xbf314d97a38f394c, 0x72c28d42f106977f, 0x6de44cc3afbb7983, 0xb07e9d1f36051577}, Y: Fp{0x4018dccc6e057de4, 0x885b7fe55d109d56, 0xd982e2e7b1f86e39, 0x2353ccd855673eee}},
		{X: Fp{0xc0d4fcb9a21d2583, 0xdef2c88d10250d95, 0x08d913cf7367be27, 0x6ee9eb4868e18a2f}, Y: Fp{0x20aed1a7d5bc30be, 0x8a180cf8fb6c8d30, 0x817d274da4e0ab0c, 0x83067ba37b92692e}},
		{X: Fp{0x9d4ff046776f0ec5, 0xe246bf6160f336b1, 0x89f07173e847d5ab, 0x6d216001860fabd3}, Y: Fp{0x0e98955da507d707, 0x99ab1fca207b9dcb, 0x768b8b600db5f80c, 0x69b348859058f0f6}},
		{X: Fp{0x4943325638ae4c7a, 0x2521e051a95f0ff0, 0xfedfad59ed66b79f, 0x1643b3f814c18538}, Y: Fp{0x1a62f2ca44e142e9, 0xbc426c7ad0ec386d, 0xe526781b3b19eb97, 0xac8ba741f5bd69f3}},
		{X: Fp{0xd864a31f5d22b9fd, 0x72f36e5c2695bf2c, 0x31607691d4b8463d, 0x8d56913a3609692f}, Y: Fp{0x4b9da6e157125d36, 0x5278b9cf7f661983, 0x01a48073be7d01ca, 0x12c65d9379e1f219}},
		{X: Fp{0x973af81b89e0da15, 0x81eac3e45587dcb7, 0x087247e5c00c599d, 0x53cb5740faf08c20}, Y: Fp{0xe1e3c0dd8d06803a, 0xe8e39be57154d485, 0x3f6eb732948ab435, 0x63767e522e301c40}},
		{X: Fp{0x66a97536e0eb0997, 0x750ba3da77246cce, 0x2a03e28523ace83a, 0x14da5a1dd76bf65e}, Y: Fp{0xdbdcce7bdf239816, 0x07bd1b6d2a92f732, 0x4286ba8802b0829b, 0x6297cd9ed08b5cab}},
		{X: Fp{0xfda54c00faa2da12, 0x0574b0bfbeeb4ee9, 0xdae750c1c0a28c89, 0x1e1244642f9369c7}, Y: Fp{0x530d97e724280062, 0x38ce1abdb0e8311a, 0x745a254d725a93a0, 0x5916151a2ac8619d}},
		{X: Fp{0x3fa8bd63a7a2de58, 0xc5a7b740be90bb06, 0x6eeb0739e7dfadd0, 0x8707ab11d6fb19c3}, Y: Fp{0x5255f8fb406c5bb3, 0x3f678d77b7a136a7, 0xb4ce8903079e5eb1, 0x7f566c75928051e0}},
		{X: Fp{0xa252822d383f2387, 0x50c73f8684fe6230, 0x54606c734f335dd1, 0x75a7f85ffc6d6f9b}, Y: Fp{0xeb97163cf6592b31, 0x2b098bf3dd4bb0bc, 0x1f5c4d16ae9769b1, 0x04bfccf5c831e6d1}},
		{X: Fp{0xf569069faf00ff07, 0x7f564398f9aa98af, 0x1e175f15db50f725, 0x5facba3b78cd00c6}, Y: Fp{0xbbfad25d1a655708, 0x390bf968c4b52bc2, 0xef17c229b77168aa, 0x618390a2bf642762}},
		{X: Fp{0x022e8ccf56691d70, 0xbd2a9b58e18252bb, 0x8f330eb9d3b3f0d4, 0x164107f70cedd9c3}, Y: Fp{0xa236a2a31724d653, 0x0d849195281a5486, 0x153f1ba09e86b0a3, 0x5a9385baf6503c7d}},
		{X: Fp{0x6ea6bd8c881050f3, 0x38f5b2f530ceac56, 0xde8ff064ea8b9608, 0x5b519a5306632463}, Y: Fp{0xcc8893f2b0fc0f25, 0xc997b34fa1fa7fd9, 0x3493d1e61669304a, 0x3ec4fbbee0de5f51}},
		{X: Fp{0xd6e7d429e9448ca8, 0xc722ace70ffcd4f4, 0xfb454e9e5d1a0283, 0x8a7d9c25320216cf}, Y: Fp{0x5b034d456988c1cb, 0xdb9e01c6f36b82b3, 0xb476218674f9499f, 0x46ac104c407cbd94}},
		{X: Fp{0x03bdc9394341ab2e, 0x8ee5a07f5d487275, 0x4edb950c81355b56, 0x800c3b087c59d68a}, Y: Fp{0x8409edc80b210544, 0x5b22a15f31c77c39, 0xfe5cd4a87502e20c, 0x7404bb4e3e646e95}},
		{X: Fp{0x50ac3e1314d0ad5c, 0x10197c4ad9a1ba2c, 0x2cdcaa83bb13b5c3, 0x2284cadfc561bb09}, Y: Fp{0x99bce8800f131ba3, 0x9cf136aed66a0343, 0x6c24251c9dbf6a8c, 0x3b7fc52baf710b73}},
		{X: Fp{0x9111699d345e95ec, 0x5e5c8c13823ec29b, 0x12d5ffa890632dfb, 0x8a1f9efa68762fe4}, Y: Fp{0x094b5ba4412a78de, 0x2b500ebf384c7bf3, 0x4f38e8f2c9a1163f, 0x79964652f56cb146}},
		{X: Fp{0x178fd1867cc372d0, 0x1a72b3e857e9da72, 0x66c0a3ef49eec524, 0x5ef47cf1f8c121f8}, Y: Fp{0x31108712367fe035, 0x300a6b00335cc5bd, 0x875d59afbb929ddb, 0x1c7dbeef7f6e52b3}},
		{X: Fp{0x51cc8e4a2b030aad, 0xa9abead660eb810d, 0xabc8f50559311af7, 0x457180f12257ad13}, Y: Fp{0xdcb779d8810a4971, 0x1c948c40d4301e81, 0xfeae10ad3a0a8546, 0x7b9ed10ef44eea94}},
		{X: Fp{0xfe53daa645eb5ad0, 0x877fe34810260868, 0x0eda9a5010a8e3ff, 0x98042c38b3a53456}, Y: Fp{0xf793642db3204f3a, 0x02b9f9eebfff38a5, 0x6ffd00fa8fc6acd1, 0x8795cf5c70c73494}},
		{X: Fp{0x2b16735b1e20b9f6, 0x403b59f059732b7e, 0x17090cdb8fc28b44, 0x7ef33835b7592815}, Y: Fp{0x25ebe134b6279374, 0x008c2991ea41efbe, 0x6a69d7be23b838a9, 0x37cda7242513bb54}},
		{X: Fp{0x96102ef126573c87, 0xa98c2852c9ccbe76, 0x175e534666ed0998, 0x11791ce9be84a202}, Y: Fp{0x85b1a4aab53d65c8, 0xfec54fc43d516f37, 0x3b8d07182541fb3e, 0xa214c932a34c64db}},
		{X: Fp{0x0f584ea2ca8097fb, 0xf67c1d1f6b74aa82, 0x7b1ca9e7e49d4dbf, 0x3fc1ad6eee8fdbdd}, Y: Fp{0x1824e77e60b22009, 0x24a4097dde8b9117, 0xc320f0eb5ee6794b, 0x41d752d65ce21da1}},
		{X: Fp{0x9b131e1a032886ea, 0xd7676dce8a6b5278, 0x9ca517333d51662f, 0x43dcfe8e4cf110c3}, Y: Fp{0x1d1215131a02d183, 0xa81e1c4f552a1b12, 0xba2546755a795a30, 0x1b670b775d2908e4}},
		{X: Fp{0x11754227b2374dd6, 0xdcc2dbab777faff7, 0xf354003938fc9261, 0x459e5efe5f09c4bf}, Y: Fp{0x43cc1f005f9d2bb9, 0x77e470c28e077e74, 0xd145e73646519a1d, 0x533d9628e10395fd}},
		{X: Fp{0x943660f42c3f754d, 0x3d58e7860c42ac17, 0x9eefc820a107e235, 0x58714fd0be88b5ed}, Y: Fp{0x6eb67ee8b0c20f00, 0xf6643acca7dab283, 0x0a9284d0428df664, 0x0ff7407bb709cd06}},
		{X: Fp{0xca6c6410ab64617b, 0x8839d2475c281bc6, 0xc057b09a2eadaaf6, 0x50ac619f4b05e05f}, Y: Fp{0xdfa8b57f383d4079, 0x17fc1a7416c9c45a, 0x3697b2ed4c83c885, 0x60032db4c4c93362}},
		{X: Fp{0x810e392e3a8113bd, 0x9be6d06bc483facb, 0xc2067bd301082248, 0xa2a6eb63df837833}, Y: Fp{0xb2d75860e63a5561, 0x093a794ba69b1614, 0xf2c0edc9ab0e7cd4, 0x99a3977f5d4eb00a}},
		{X: Fp{0x51d1cb888dcd62a5, 0xe03f411ad5b7950a, 0x14b2eabdc221a059, 0x5108a4e56aac8eb3}, Y: Fp{0x405e565633750075, 0x5cebb1254086ed6c, 0xfd09f1eeda4862a3, 0x4980e289f0184fee}},
		{X: Fp{0xff793e7297a7192e, 0x940a5c4ace9cba4b, 0xe96de591709311a0, 0x04a72c8716d3c1b7}, Y: Fp{0xa7b87e62b8075747, 0x4922093aa8e4f268, 0xcc8151d599814a95, 0x63c142b244bb6624}},
		{X: Fp{0x07142e352ea71b30, 0x80be7ace64003177, 0xf2d24813fc6f452e, 0x1609acd45f8abd6b}, Y: Fp{0xe19456e50494b1f0, 0x4c6a1007e51ced17, 0x843a50e2c276124c, 0x96e86395eaba9196}},
		{X: Fp{0x4c20dddbce5c0695, 0x93290d7d5e250923, 0xb4691c3b28d7a073, 0x634b1b7c57ac0e9f}, Y: Fp{0x18248541a6026a65, 0x3e87c4682e478bd1, 0x6b5c82c4dd0f1bb9, 0x1b9ff384bb669a35}},
		{X: Fp{0x50f6f96eaa05f18e, 0xee33400e7fbc5104, 0xe8a3c5bff9b432ff, 0xa00e6bd336ea7693}, Y: Fp{0xf83785269c3147d1, 0x1893e363456e70ff, 0x9562c2266c499e04, 0x2abacb97bb2f70b0}},
		{X: Fp{0xfe0de4ebdf982cc7, 0x36180dbcfc81ebff, 0xfba290b0a36d718d, 0xa0d59ba14c1a2757}, Y: Fp{0x665241b6e570f0bf, 0x79bfdd3391b4642d, 0x8432edf5ca532223, 0xae46801a773f53e6}},
		{X: Fp{0x7d9fbce545e28418, 0x226af0426cda7c9c, 0x4c643a45fa497add, 0x4ad3d84b5601895f}, Y: Fp{0xa0bdddf9578b76a4, 0xca526c4ed6736f9d, 0x9922e447fcd892d6, 0x74e7ba50a44b2e02}},
		{X: Fp{0xc2a68c999264d1c1, 0xd8f37ba03a7c2102, 0xca3a00d4ced7ffd9, 0x4025a4c2f53c2e42}, Y: Fp{0xc8e40ccb81b25b97, 0x664fe4ed9ae49880, 0x5e578e6278adc66b, 0x7349cacb8ab76e18}},
		{X: Fp{0x9c443ebb6c25fb13, 0xe68ef1bc42c9f13c, 0xce3f8f2292d631dd, 0x0477f04a44b63f90}, Y: Fp{0x3c0919b76b6e8877, 0x0dda255bbe1cff59, 0xc205e8d599c5d441, 0x58aff5d803937383}},
		{X: Fp{0xf9f7debd4bd7995b, 0x6658533f1f9602b4, 0x3b0e7ee1b1ea71db, 0x5866c855d3ce37ca}, Y: Fp{0xd61967a4ed95cb3e, 0xa0bcc5b9e6a304c9, 0x6e8a332f864e831b, 0x52e3cecd25091704}},
		{X: Fp{0x19a701f2b2817a49, 0x17618d27316b9509, 0xee0f2f07c6b429bf, 0x0d18c621c301d79e}, Y: Fp{0xdecf67795e0c0a38, 0xddb4b8bf4a2a6fa4, 0xac88138c6796bd7b, 0x02b37df7bb0d05fe}},
		{X: Fp{0x6b1caebab8b1c3e1, 0xedc7fbbd358c231f, 0xe270f9be52473d1d, 0x6ebce7cd0de37679}, Y: Fp{0xd8fc9b54e5fb376d, 0xd7a2698b97e461a0, 0x0411ad3d6602f5aa, 0x93ced54ae7e80e3c}},
		{X: Fp{0x464fe6bc3c515dce, 0x105b36b1e09a6dde, 0x727edf5938c7a2f5, 0xa1b7ba9c1eed080c}, Y: Fp{0xd8c308fe6c010859, 0x0af81a39bd842911, 0xd36ce47a450e5de9, 0x013c6df3cfd7b5d2}},
		{X: Fp{0xe86434534b3af37b, 0x517f7e6f33fbc511, 0xb3f1b61be63c7f58, 0xa074963b934c1ffd}, Y: Fp{0xd05a52138f5dd0b2, 0x4098f9e4e37214b0, 0xe87fdb2e061c7328, 0x78ee3d9571c2c7ef}},
		{X: Fp{0xfcf2177cd70942dc, 0x1745fefcbd150894, 0x58ede32ac2beecc5, 0x34ed2e83a6fe4079}, Y: Fp{0x7a45b9c12d092b54, 0x3b93af84e3b28a0b, 0xcf8e11d2e2d5d87b, 0x2d3d375bbf799c8b}},
		{X: Fp{0x27215c75b8379704, 0xc3ce5da7f6286cce, 0xaca097523be2b13c, 0x08fa2fc851ef82c1}, Y: Fp{0x3608462af61c48fe, 0x9e13b8a677d19e63, 0x0d7adb16a1e78f77, 0x9de16bcd7e266b0a}},
		{X: Fp{0x8e31005feb204656, 0x243b6fb3a19cf8bf, 0x4f4f8a46ff2241fd, 0x1f49cff273b21a1f}, Y: Fp{0xbf59a22470c23024, 0x135eb957103f420a, 0xd89cdcaf8753b3f2, 0x741885768458678a}},
		{X: Fp{0x1791c93ce78064a0, 0xb3a8f59944a00ab9, 0x7c5ac55c32c4549e, 0xa29056bf250915fa}, Y: Fp{0x6a3052ffe970739a, 0xa185bbbdaee90df6, 0xd67b7613fe968366, 0x8d42cbf10e47b6b3}},
		{X: Fp{0x4c189eeff9b50147, 0x90b803b39087c97e, 0xb2bfb8ab1134ff07, 0x27956361aabb9ba2}, Y: Fp{0x153d4f19ba6f29b1, 0xfba78832755e2fc4, 0x39764359418a0de4, 0x67166d5806a0e598}},
		{X: Fp{0xa998acbb127e714a, 0x1c3ee7fbe9d51463, 0xed9cf84b6d493c17, 0x560d7964f8ebb95f}, Y: Fp{0xcdd22044dd92cab8, 0xce0af10ed2b2f703, 0xe7289a5dc6fd7b08, 0x90a6aba920cafa41}},
		{X: Fp{0x55cf359d2e97920e, 0x9b48e26bb257d23b, 0x665f0e3e17475ec2, 0x8d6adb26d4cb5714}, Y: Fp{0x46e6e60922e020c8, 0x337daa5681ba81be, 0x4f93f542b95dd905, 0x61a2525f6e90f9ec}},
		{X: Fp{0xf817543efa1dc270, 0xae3a13317e41032f, 0xf47ff2c9072241b7, 0x0e6035d32a4686d6}, Y: Fp{0x8c5832f709d18fcd, 0xdbc63b8594631944, 0xdbc7050a24f3791d, 0x58551f105ad60cef}},
		{X: Fp{0xd3542bfa3506881e, 0x8f866843fa24922e, 0xf786062f53d165a1, 0x65227643ea7a4ab0}, Y: Fp{0xa16fb4e8cf6f4830, 0x46becbc1a951e5a2, 0x23bd6ddcec4cec5a, 0x16baac7f2c154cb7}},
		{X: Fp{0x8f749bef8276116e, 0x0c55921741b43cb9, 0xd398822f12e4d17d, 0x44130fa56d64746b}, Y: Fp{0x00dbd79b6f99a4e6, 0xe4b3f4a7c81f717c, 0x03328dd239fdb80f, 0x6f979cf10ea1308b}},
		{X: Fp{0x855b2cd0f4004131, 0xd5e9a6e0e42f4d78, 0x9539bbc9e90b5133, 0x45996d6205b5cf3e}, Y: Fp{0x5aa3eb54c3300a34, 0xa8514db9f7082e73, 0xe5cdd5a4267ecb83, 0x752bc69192d50c54}},
		{X: Fp{0x36d15ec2222f282e, 0xc91de5cb170e64d0, 0x997d02544512e5a0, 0x37f7621b6ffc2c07}, Y: Fp{0xba58892d3b3b0690, 0xaf0d45e7cbef944a, 0x130f7531701bd9ce, 0x86fd3cff34c81700}},
		{X: Fp{0x12a0e49b10ef5a1f, 0x058666cca583a773, 0x3f0d8e2af15522b5, 0x144cd3ef7de7ec59}, Y: Fp{0x323128831379f608, 0xb9c1480aced8d85b, 0xe8ee57d3d6e1065c, 0xa7ec6d724458632c}},
		{X: Fp{0xe62f9d6e74224afc, 0xcd1d4cf60b99376e, 0xe4660240bfefee07, 0x608137d646b9dc53}, Y: Fp{0x4732df45085aac6b, 0x371668fae1e2c3e5, 0x96f866425f8b3240, 0x7ff2b0a253e26025}},
		{X: Fp{0x881f1dfd166cd3c1, 0xd308eac84be917c8, 0xf5b6207a3992b980, 0x261ae33ba5f17e39}, Y: Fp{0xbe638db9fd976a70, 0xb7619dd3949f24e9, 0x56518e2b24e07ede, 0xa77bfab0e221f51d}},
	},
	{ // i=23
		{X: Fp{0x15c211d7bcaa0110, 0x310061b1ed425b37, 0x3d010edca9dfb24d, 0x0d86baf1772556a1}, Y: Fp{0xed908001dcc463b7, 0x8daa3a1aaaf9ea2a, 0x13f9f294481140ca, 0x695ef8ce9c688639}},
		{X: Fp{0x1c64149c58373429, 0x61c24546b40b1d07, 0x662327b53b9e094f, 0x6a83dd3c95fd09c8}, Y: Fp{0x5a0a604ceabed104, 0x4a034408698afda5, 0x4e88e9c6db312b2d, 0x7b0cd77e702f4e13}},
		{X: Fp{0xd001389b70c1640f, 0xf60a17ca4e91c4f7, 0x34d99c928fc74362, 0x05ee65932c6093aa}, Y: Fp{0x2915f7fd88dee911, 0xb074c31ca36474dc, 0xb468fdf369ef7b4e, 0x031a829ef1edcea0}},
		{X: Fp{0x686d4e2db20f3974, 0xe48517a336b01cf3, 0xbb1f921f9efbc9b4, 0x40065fb979c5946a}, Y: Fp{0xb65cb521a25a2ead, 0x159b40684072070e, 0x67c600c88c4b5793, 0x7447760e695a4b1a}},
		{X: Fp{0xd0854901d1fc556c, 0xccefe4abcbc07796, 0x6e107f02548c9db7, 0x7e8c9f79500296cc}, Y: Fp{0x82a563dbc934ff5a, 0xfcf5dc1a5d624ba4, 0x30ae23b1f4de33b8, 0x732b632e10f51b08}},
		{X: Fp{0xca69736158b1a229, 0x16ca58a4931fdaa2, 0x6ac60e1d05057a08, 0xb04fdd8fd1e0fb8c}, Y: Fp{0x5846530595db82c5, 0x1a775d6b6b491c18, 0x09b71374c1c42823, 0x55ebe39935f41c3e}},
		{X: Fp{0xdb867a32f6bedd5d, 0x87b5c30e17b474db, 0xb244c9871854ab4d, 0x644b1096aa633c1c}, Y: Fp{0x608693d7b0ee4611, 0x83f1c70977d9136a, 0x9e146b58ebba7081, 0x80b2e36b6930c9de}},
		{X: Fp{0xc2b41c632c5e9bcf, 0x53ad991d870555e4, 0x390a4a68ef47fc5e, 0xa43e442b2300a3c4}, Y: Fp{0xc7e24af3afa9d017, 0xd3ebf7e05602b9bc, 0xe6ac4d94d41e098f, 0x874c06a9c7a4a2e9}},
		{X: Fp{0x443bdecd216be5f9, 0x9720d757f4a2890d, 0x3eb039f70f4bf98e, 0x93d494f0dbcd9551}, Y: Fp{0x134d3eb086a40f9c, 0xb5c855da58649480, 0x4f1ad9b8ef506c4d, 0x7124bb166f7c0ea1}},
		{X: Fp{0x3bde4216ab28691b, 0xca37649bced86508, 0x87fdd961c3bb92b0, 0x24990bb44eb8c91d}, Y: Fp{0x1730e8b982503754, 0x995d21be9d97c7e7, 0xc34dc80612d9d56b, 0x0070728092ae51a8}},
		{X: Fp{0x6761893f5a61adfa, 0xc5d2b0e405726836, 0x780d4fe2ae6dd01e, 0xa3f62edccf527cd8}, Y: Fp{0xab8617564dbd7d00, 0x4f5d98e3b25463f5, 0x5a7da432646e8052, 0x9f11d6c36e1470fd}},
		{X: Fp{0x9f40a132e57c2e27, 0x7d174dd42151629c, 0x7c3c06f327d78ead, 0x0314ca5fb72a9b54}, Y: Fp{0xfd800d669beb3774, 0x46b2d27c9ec66f80, 0xbf43efa4114a176c, 0x0697891e2f19c60b}},
		{X: Fp{0x6b1d9d44268bb711, 0x97e999f345a3cf95, 0x56b7273a7c783195, 0x1bcb5c5410a3325b}, Y: Fp{0x6e5eeeedf96cacb3, 0x82cf0a9be85900dc, 0x985a4ea2b61a92b1, 0x15d143128cb7a66a}},
		{X: Fp{0x7f9b793527e8528b, 0x488e873111f25df3, 0x23f20660d028ff66, 0x608c02cfe5f4de77}, Y: Fp{0x1d399e42a402fb45, 0x5d1332a5e68f5a68, 0xa0fc6dd1e1196b9a, 0x85ff39b55d6f4e92}},
		{X: Fp{0x42e368d3cd56ea05, 0x0ede4d664c2d2e9e, 0x06c62b47d1fd97e5, 0x33b37e978c2fea11}, Y: Fp{0xc52b4b3498b2fb64, 0x3c3d9c0298624949, 0xd2f69c3c4bcabb0e, 0x559d7b7b748e3ff7}},
		{X: Fp{0xb8c578c6622e786a, 0x60165355ca50d77a, 0xf8b8478fcb3515ed, 0x975c3b18de643d74}, Y: Fp{0x46b9523938e7a0e8, 0x7b81b15690c22ee5, 0xc939078b39efe995, 0x93b57f3b7d9d332c}},
		{X: Fp{0x304e12e2c6bb5f3c, 0x8ed1c76888cd664b, 0x836cf7efc263fc88, 0x4dcf029dda1f7718}, Y: Fp{0x3586828c10120987, 0xc57aebe3bdd34bb7, 0xfa19ac6409783bf5, 0x5c8e2b77cc85c17e}},
		{X: Fp{0x47d22b7a0c5c45b6, 0x34cc14a7d69b5e20, 0xaf7ddd27d5f50d91, 0x2754d2e3756755a1}, Y: Fp{0xb70c4f77f71a445a, 0x8d8806068593bd36, 0x1697bfea8eb1a28e, 0x8d967a6e8ea88a07}},
		{X: Fp{0x2307af0c804bf110, 0x47dac2a6910cf457, 0xa075888e27032b49, 0x92d04f0e5c9cda45}, Y: Fp{0x9333bac21d897b21, 0xb0494e513b1be04b, 0x3264ac24d0bde0d6, 0x340532f6555af914}},
		{X: Fp{0x39ac208e9e1fd784, 0x03f3b1060908dc98, 0xe2e140efbe044494, 0x9913f7171ec8635f}, Y: Fp{0x166b84bbceaade54, 0x60c1daef266403dd, 0xcaeff5447611a171, 0x591c9914b1b37144}},
		{X: Fp{0xfb5d64584c613da6, 0xd171896841f9ee1a, 0xe60563c06ed5a8ad, 0xab7bb7201b888a65}, Y: Fp{0x20077d12b2afe92e, 0xba1653f95b9485b1, 0x5eb657b1df7a6f73, 0x5d62255884f439f9}},
		{X: Fp{0x2234beb517988141, 0xd0406ada1b1d2bf4, 0x0a123e22d6507338, 0x93e2965cdc556433}, Y: Fp{0x423411249ad23d85, 0x85e2b788a88a4f31, 0x5b28b99d69b7552e, 0x0ccafce348a62f4b}},
		{X: Fp{0xed8b81eb6b6c1217, 0xf054e821dfcbf417, 0x7dbb71b7c5eeaba6, 0x8d1209c8105bf4e5}, Y: Fp{0x0c90c5e0619e3ac6, 0xb5fb51fc65467bb4, 0xc43c079b6c79c706, 0x09e3134ca47e96ed}},
		{X: Fp{0xb4d296cca79ab24d, 0xfd845949cb1f156c, 0xd0e67beb0299b6bb, 0x170eb65b2575fd45}, Y: Fp{0xcd7e0121a9da13cd, 0xb2047989a2c06dbd, 0xc9809d14bd7f1e30, 0x8a2b56487dff4795}},
		{X: Fp{0x12896f910e756d20, 0x74f94cd3ffdc22a5, 0xc2de1a48ee990fcd, 0x7b6b9f213e00e4ef}, Y: Fp{0xfd6f5a74312e4070, 0xde525cc5c0b93e20, 0xfff8758836d1e68e, 0x6f04fd6156f592ea}},
		{X: Fp{0x797a7165d83ec7fe, 0x678f03989af1bd9e, 0x64311ad30ccfd3bc, 0x350b56193f444d81}, Y: Fp{0x4bbf221c5ed7f468, 0xb68b3e0036131a91, 0x853b7c95a286c68f, 0x78c57c4efeb5eb06}},
		{X: Fp{0xdb44ba55cb4f826e, 0xb50b3502fcb6594e, 0xc64022f92fabbd6e, 0x0661b041357d9aa4}, Y: Fp{0x56012f1545e3f723, 0xaf6b51978f5e71fd, 0x35216950e7d38ff8, 0x148b066025feeaa2}},
		{X: Fp{0x94e13098dd6ce9b8, 0xba4159bb9800719d, 0x2057916022ee46b3, 0xa3a41cd640c0a8c0}, Y: Fp{0xb7a957591f03b8be, 0x949f3b6636672d1f, 0xbc997290d204b8ae, 0x97893fc8f711599e}},
		{X: Fp{0x2c6795c565cc5b3c, 0xd2d7b48421e3caa0, 0xf6f372103a975093, 0x66ff68e32f08b164}, Y: Fp{0xd12b439cd6c2a0be, 0xc228a60f18e972ba, 0xd21b1f20e186c187, 0xaddc801f2a605d82}},
		{X: Fp{0x1c00f593d5b9a990, 0x41957e4a140a37aa, 0xedf5dba1419e7df8, 0x78b852d4699821b7}, Y: Fp{0x14be84b42aa68c7b, 0x374624fa96b0ec41, 0x4e4fb55b58bfbc8b, 0x43396248998349ef}},
		{X: Fp{0xe5fa4d2eb32455d4, 0x14b289fb035e3602, 0x05a37c6805a58a8c, 0xaff703dadbe9353b}, Y: Fp{0x7fe63af71ebc69a7, 0x315a1f51902071a3, 0x20006d78c0399a80, 0x1b9022513643396c}},
		{X: Fp{0xb09f927932a66e8b, 0x00db2c2b2e8ae125, 0xcba007e418008426, 0x2cf5958f05e86895}, Y: Fp{0x872bc97fe8e3a9eb, 0x9a940058994a7109, 0x76f30033746c0c75, 0x4b23a0b163792161}},
		{X: Fp{0x0fdf0b4115b47a39, 0xb3168576f45eb91f, 0x2da0c855ec42bc8e, 0x6e2ef8a73667a642}, Y: Fp{0xe19841308c772264, 0x5dcc093eb46b0d25, 0x12c078a56026b39f, 0x3e9d330ff9732231}},
		{X: Fp{0x08500fac5a4bfb1b, 0x024dad88d22d64c4, 0xbc7a2ce69ed3eea4, 0x0c990846b64025fe}, Y: Fp{0xcaf95dd8111b5129, 0x2f5199d63878fec6, 0x4bae3c5b1d4b59ce, 0x2b1e9f4de1386f04}},
		{X: Fp{0x3580fad6c8b6cef0, 0x5e0931184708a545, 0xd554ca5d5e014314, 0x6d2af4ae92a99a6d}, Y: Fp{0xc745632819925b14, 0x1f75f1993921edd3, 0xd6e9850b6ae156fa, 0x02a8f1b738ee576c}},
		{X: Fp{0x2108e1bfc04b7028, 0x8a5ce15034366723, 0x99a972dab8284af5, 0x207a580c41e5c339}, Y: Fp{0x05abb9aac94ee084, 0x084dd5bf961d08f1, 0xa9ccbbb27ae5b2bd, 0x0c6ef90e1b43950e}},
		{X: Fp{0x8858048425181eaf, 0x1a88387b978f3a63, 0x9f6b189ca8ef3b82, 0x87eab0cfac58df94}, Y: Fp{0x148278a7fa210566, 0x8409a938cb144bf7, 0xcc72b85fb2ccffc6, 0x94452b733bd12710}},
		{X: Fp{0x6cb6e85b7d5f2c7b, 0xf9db531b42748b34, 0x96c4e1b1c99d9caf, 0x432694747aa06503}, Y: Fp{0xfe18770785062e5f, 0x262d139af3939701, 0x344d4e77c58ea1e0, 0x8eac4ed8a84bb43e}},
		{X: Fp{0xe423e917eb696352, 0x000334a9f0d20494, 0xfe9adc23288aacba, 0x377818c4cee20e13}, Y: Fp{0x78c4d6c38305d75c, 0x7289ff8dbb2bad6f, 0xaa64afd0e5ec662c, 0x9d67721d87480db2}},
		{X: Fp{0x9ed34f163eb4d299, 0x125aee39048d31a6, 0x4320c969b5e69d66, 0x7ba9ea0a6f1baee0}, Y: Fp{0x1a118c794b312918, 0x490b214b1c050bd7, 0xa1658222ec00108b, 0x0628e4d766e525c9}},
		{X: Fp{0xd930dbf3b39e70a4, 0xadeba610ff2c1612, 0x948c7a63c7e65953, 0xac22fa88c2f69a7f}, Y: Fp{0x01e8227a721fb5a1, 0xcd5e02fd36cbbba5, 0x399789e6926d9a50, 0x5032db8e87f6e061}},
		{X: Fp{0x423773f191275e73, 0x4230e7dc0a53fa38, 0x4f1cf9c1eed6b197, 0x60b2671b259abc3d}, Y: Fp{0x66806fd9cf7bb02b, 0x22da077c1ddc83fd, 0x40087c5fde192170, 0x9c39b519387a867a}},
		{X: Fp{0x49bdfbdc0a63fecc, 0x6a545f53964c1685, 0x95585220e9c67a7c, 0x57e802541decd815}, Y: Fp{0xb397377d885b0bc0, 0x74fdbe15bca147ef, 0xb80f036165c8f2e8, 0x46fe518af77320c5}},
		{X: Fp{0x875821ae6488984d, 0xc3a434e0861b3050, 0xe18ac7eed5ad53f2, 0x4c85fb350a79b88e}, Y: Fp{0x722887b9f57da1be, 0x4484a637d75a0470, 0x3e4c7b49249819ca, 0x1ec12d129ae0d7d9}},
		{X: Fp{0x1c6bae09e051d846, 0x17b041b7ab572afb, 0xcc5726d420f49785, 0x294fcd25daad0210}, Y: Fp{0x5f140a83d6f15dde, 0xfee163cbcb5b21e8, 0x18f788d3723943f6, 0x717d1ff4200859e2}},
		{X: Fp{0xa00d5ba1067fe403, 0x9d8a4e10b957ed93, 0x2904a88fb06beb23, 0x55aaae0ffc465678}, Y: Fp{0xec18b2b3f276be99, 0xdc80b8f47b833068, 0x16184235903b969b, 0xb091876163a96042}},
		{X: Fp{0x40c44d9eff7dc8c3, 0x734c39c15bbc4730, 0x7e43544c3103ed8c, 0x99a08a1b2d581b35}, Y: Fp{0x7a3a18d038c42458, 0xf31db8dab010d784, 0x70b7f5333118f2fd, 0x0ad16b10a919b69d}},
		{X: Fp{0x9d32453a7f07f5a0, 0xe2a957414897d0a0, 0xeda53fe9fbdb0476, 0x83c587f472e41fbf}, Y: Fp{0xbff644dd329b1cda, 0x7f37b07d3d33be64, 0x1bf1ddbd626d38ff, 0x66502e5ce6f4adc6}},
		{X: Fp{0x6a196af964f222f7, 0x3c147c8bd79a5b28, 0x28e1c08689c64a7b, 0x6747726b6afa14b6}, Y: Fp{0xffd1498174e005a1, 0xa35a1f6d3c65aa57, 0x73a9888f14a31803, 0x025d2485749f5d2c}},
		{X: Fp{0xb805e2cd0b7b2a7f, 0xb5f42ac9b1f409d9, 0xadc99b6da2df55c2, 0x863f091e190b464f}, Y: Fp{0xdc163921b092a5b3, 0xe015cd19ae990dd4, 0xd4b8feb18c915a44, 0x2f323e3e18f86b69}},
		{X: Fp{0x9ca2852de0bb1461, 0x2b7998c4fa669090, 0xf7853a2879a4b457, 0x53ea8af072c16076}, Y: Fp{0xd52f50918a42b9ab, 0xb9b8f4a4f5ff24d4, 0xa2f85505c063df1e, 0xa4048082cf6eda5b}},
		{X: Fp{0x547042d73619b223, 0x6b1f8ea8ef1935d1, 0x462d1df351debae9, 0x38de597bd5310c41}, Y: Fp{0x9aa0afaf8316b184, 0x0ef538d027c22cd3, 0xe0df948a497d0649, 0x1b35ef48e10296e2}},
		{X: Fp{0x22242824e28fa3b7, 0xe16087f9f496694d, 0x38a25210b3433065, 0x59cc55616ddc6ce2}, Y: Fp{0x69ee56ec4db64a9c, 0xf70d86116d9ee8ad, 0xfb9201dfe71527b2, 0x25f51bf441487770}},
		{X: Fp{0xb3bfda5a38294472, 0xc46a010f6317015c, 0x220c39b74fdd6097, 0x769e44051c79adb6}, Y: Fp{0x772148ec9f019327, 0xc35e0baea7d146b1, 0xafbb02a005f92415, 0x17871ecc68a658ff}},
		{X: Fp{0x8213a56ca469d162, 0x982310f7ca8f3a0f, 0x30d48da87f49fbb6, 0x82449e3261177aab}, Y: Fp{0xab9fa4c8376dd689, 0x26f40a95755452ef, 0x5440cf193d49b4a6, 0x5a2e144c7918f852}},
		{X: Fp{0xbc0262cb365d0b79, 0xa5eba185dc3d6b2c, 0xd97a09d1bc41c330, 0x6fb306a65d618a03}, Y: Fp{0xd0a2ad8962dd879f, 0x3ee2ffad30c9c32e, 0xd05ccf484426c14f, 0x40cca08cd0322047}},
		{X: Fp{0xc2e7c87388df3fbf, 0x7c7157f51febc8e0, 0x0852db198be3852a, 0x2b3e09faaeab9cc5}, Y: Fp{0x09662e7aa2e2d035, 0x884171adc2ee2d75, 0xe43af64de7245cc9, 0x11bf13f18c5dd4d4}},
		{X: Fp{0xbb97c95b09cf4d49, 0xe056288f8ae5422c, 0xe9979457e680bea5, 0x7dac7dadb53b6864}, Y: Fp{0x61d311c5adc036be, 0x98f5cc5f7312dee0, 0x4322c7306d410907, 0xaa863bb63d8e5aa3}},
		{X: Fp{0x264f0ac5188f432e, 0x96d881ac4a1d46a6, 0x13ae15dcbc3a81b5, 0x3e1863c3b330607a}, Y: Fp{0xa2a32caf496fe368, 0xa8a7e6315b5a4848, 0x495874169c1d41d9, 0x1d5a197c94a4d214}},
		{X: Fp{0xd419700f3b578f9a, 0x102b307492ae3905, 0x5c3e6c040bfd9dc6, 0x7644eab1073a5e25}, Y: Fp{0x76d4319087a60eb1, 0x287053ec0fdbb373, 0xf1d959ca2538e560, 0x3c8d1a34cffa2d66}},
		{X: Fp{0xdd3eb005d128efd2, 0xb42cbbd1506fe855, 0xb0102244d898fbd1, 0xadd9ec8bb5ada971}, Y: Fp{0x9841d79f41c386cb, 0x2900fcd84dd989c8, 0x45117503dbf4697b, 0x3159dc9cf6973504}},
		{X: Fp{0x6ff9cfb1eae06689, 0x9366ee1672dfa7cb, 0x1eb7f78ef8432e2d, 0x79ed6560362c2985}, Y: Fp{0x4e709f1e7e558cfa, 0x54fb0ab7fe3e7103, 0x71ac90e62ed5a9d9, 0x4159fb5b9afc6cf6}},
		{X: Fp{0xd31b1b3c892ab967, 0x63b1b7cb8716af37, 0x9d0f4b3996aba466, 0x9346dfbfabcc5af1}, Y: Fp{0x3595cd6f5281533b, 0xb546657ffc153862, 0xb0210bd2f54fc35e, 0x6ac855c7b8076924}},
		{X: Fp{0x608c32a055e6b2af, 0x405b846f1350c14c, 0x52ad0160f16afb39, 0x751a73f2ecc5f8f6}, Y: Fp{0x5268e340e2abf867, 0x2df80f6227896f06, 0xc708f896799f945d, 0x77afc0cef34e496f}},
	},
	{ // i=24
		{X: Fp{0x919a51c4b8e31a27, 0x24a58ecbf4ea666f, 0x6e986c8f202d026c, 0x450266a4642aadae}, Y: Fp{0xe7b90b6b7cc695b6, 0x3370cbbe2ebc1613, 0xe316b89ba4777bed, 0x57fe8e602b84ed7f}},
		{X: Fp{0x8a41f093508deb19, 0x037bdd8c493d0c65, 0xc3623f96714761fd, 0x3729e61c0f4f37d9}, Y: Fp{0x1ac5fde87d17d2c3, 0x5a3c7408ff9efb6a, 0x8788ae71b8e23f08, 0x75ae5bf7d6d0dbda}},
		{X: Fp{0x85228440b9517d4f, 0xe5b56fa0f6c9023a, 0xf745a97da2c3f2ab, 0x947cefbde9d7a5eb}, Y: Fp{0xcded896043692d18, 0x6597000634ad1575, 0x449432a6d9b5d3b5, 0x263afe1a899a3656}},
		{X: Fp{0x0684b0ad251fa7f1, 0xb5befbfedbededb0, 0xf3f830ddbf847880, 0x24a706b35e7fd99d}, Y: Fp{0xff3a959992820cde, 0xa285020414c5ea44, 0x2c66c7811677d621, 0x28c1da4e7e18ef58}},
		{X: Fp{0x73ddbcf6d0bebeec, 0x811ee14e5d5b0b31, 0x83ea02baafce15af, 0xa226ce7287b43b40}, Y: Fp{0x0ef693c14a5618a4, 0xdfacb4bfd56fb341, 0x6f8fb268e5918ca4, 0x96e42dab766ab8b5}},
		{X: Fp{0x09322ba9dc131276, 0x9b8e9eb0f1031a54, 0x4cc0d664debd919f, 0x8bd17c869b9f40c5}, Y: Fp{0x34b7bcc9c337ab87, 0xc18c9997dfe5fd86, 0x77f2e4182a32f4fd, 0xa2d79264040ce548}},
		{X: Fp{0x16c42124f85a2d9b, 0x3f15e2184042f6b5, 0xa705f0c25e4717fa, 0xafa51e82eef0e4ec}, Y: Fp{0x89f72b7c98f42040, 0x558ace061b26d5ae, 0xe1d05be8bb167700, 0x33a92f156b4457a0}},
		{X: Fp{0x8086ae3df348a1d8, 0x86d643fce60a8a01, 0x626f123f5eab0791, 0x640917b505f0ee6a}, Y: Fp{0xd116bda0d2865f60, 0x7f33e5b396ff016f, 0xa48e9f11853db036, 0xb031ea9f78fa88af}},
		{X: Fp{0x391d45627a22dfb3, 0x61977014c24a5e74, 0xcd67fcf05732f7ec, 0x029e127f8280d444}, Y: Fp{0xd91429088ec7863f, 0xbcb1d23803230ca5, 0xd59c75419ba540b5, 0x52d0d883f4ddbc6a}},
		{X: Fp{0x3aabf23cd78a7c48, 0x9f02a04816859599, 0x9dab04744679f4e1, 0xaf5fb062af7864ec}, Y: Fp{0x80f9ea8e51132eb1, 0x70ce904e75d61b78, 0xe682d71fbdc9dd50, 0x8e388ca14fb0c89c}},
		{X: Fp{0x686fa56dd9018f2a, 0x6f27a78b4d21638b, 0x909254c7adae87d1, 0x9614794729b611a0}, Y: Fp{0xf7cc545e521b1c28, 0xdeea0c8af445c622, 0xae02188242e7feab, 0x2079decc519521b1}},
		{X: Fp{0xe614fb1d984725f9, 0x625fda321350fdaa, 0xb8d86df22baa0155, 0x50ba90f26e45a1a0}, Y: Fp{0x9d7bee319db82abd, 0xa7884ac9ad5f2a37, 0x5219dc20dbdc7367, 0x1e696188571bcce0}},
		{X: Fp{0xc0f44d480fdd91eb, 0xa383fe1ad16651e8, 0xa3d5ea9202aee98c, 0x051c02ceabdd2356}, Y: Fp{0x06e0680890faa2ed, 0x6ea91307856bbc6e, 0x282073b28dad5224, 0x462813c2a45eca2a}},
		{X: Fp{0x13fe8604e6e3657a, 0x4f8f37b73f8464b0, 0x8e0ecb01815dc24d, 0x0a093a874b7c562d}, Y: Fp{0x418c94ae3fd23804, 0xba4ed1a7fe9a303b, 0x00b3271ecda682ec, 0x403d7a89f0a7396a}},
		{X: Fp{0x91d18f15ed8c5e4b, 0xd6371a39e8d2fdb9, 0x3251a9f7dae0d047, 0x595223a294104daa}, Y: Fp{0xcc9053c9df36c999, 0x22f85b43c2920b47, 0x5d5145914324d631, 0x23f18fd98c237f76}},
		{X: Fp{0x02edfe8d83245e1e, 0xce57c572696e4a27, 0x8c73f7759dae858f, 0x0ca2f758742c401f}, Y: Fp{0x3a34d1544f1ccabd, 0xf437be3323622b3d, 0xb91857f6c59e676e, 0x46228d93b4d84e90}},
		{X: Fp{0x89eba7b9df4c705a, 0x1f4d513693eeae96, 0x93edb7e376299d3a, 0x6a57ed01d6d71047}, Y: Fp{0x0f3a5db66e889c18, 0xb89ca153b6530678, 0xe9d9a2411120c051, 0x2b908c9f74ffb1ac}},
		{X: Fp{0x09f7a74f06fdc104, 0x0e50541b897e5f96, 0xc2cd5bd14676acd4, 0x16920f425ec7b72d}, Y: Fp{0xa54ce2a4827f3673, 0xa3417b4269cf61c1, 0x5988b085d4d37640, 0x426b26378682df61}},
		{X: Fp{0xf384f7139ac42325, 0x02bdea5311aa62c5, 0x3554567963e9f41b, 0x8afd0d8037c06c9e}, Y: Fp{0x5ea361dcf47ec3dd, 0xc7cb66d983cfae95, 0xa598d5b0b4d10937, 0xb44a70c3288f1770}},
		{X: Fp{0xbbf3fcdf0d867f48, 0x81720515cfe751f4, 0xde13ca514b51c676, 0xb24a2c091080dc56}, Y: Fp{0x44e88b5ff467a884, 0xb05d065b76f31b2b, 0x538fc5bef06aaf37, 0x6af997cffe469b0c}},
		{X: Fp{0x0490828103aad72a, 0x70cd0de6f8f76b54, 0x546c14f4ec2bb9a6, 0x33b2c20b3b35a1ac}, Y: Fp{0x5f4adac9700856d6, 0x6009d1f5241e91a0, 0xac79719b7a982d93, 0x72958e6f9a0e5230}},
		{X: Fp{0xbcabd6fe90509db0, 0x04b90eb648589f7b, 0x3a6680f8afa6a4c2, 0x50b77868f2db9e9a}, Y: Fp{0xea297f4e5b86ddf3, 0xcdbe7d29452c5eb1, 0x87663f811ee631f2, 0x2a7632622265c43d}},
		{X: Fp{0x84e79a08536fe77d, 0xd7a389ca8e2c30cc, 0x90ebd20fc78c2701, 0x3702998753f92846}, Y: Fp{0x2529d1d62aabdecc, 0xcefe516bedb2defc, 0x788679a58a11ce5e, 0x41f44f82155e7dfd}},
		{X: Fp{0x51a9043c64b5dabd, 0x31fd249157e63f7a, 0x47b8b993e97379fe, 0x831e46382f1093bb}, Y: Fp{0xecace6f1aa76da1c, 0x1f874b7c161be7dc, 0xb9d6ed6bf8f72cf9, 0x9f4a87ffbdc6b243}},
		{X: Fp{0x29443229075996fd, 0x0a007526e0d03af7, 0x080b9890b138ec8c, 0x2d23a7d67cfea31e}, Y: Fp{0xa64175a5dd290d61, 0xde600050457a7b1f, 0x98b1a75e90714c7e, 0x969b658d8d2b742a}},
		{X: Fp{0x713d7c1989a3f9ba, 0xee54861a25951999, 0xe2eef91253735193, 0x9e6cf0a16544795f}, Y: Fp{0x4e922240c8b9fd96, 0xceead268dc6b4417, 0x634c6e03a906c6a6, 0x195cf1011c6735b2}},
		{X: Fp{0xc3401c9ff474ebf7, 0x00a25070bfb83063, 0xf584908116045a5c, 0x783cecb86744bfe5}, Y: Fp{0xe13c03776b92dc45, 0xcb14cc947d456f57, 0x56aaef0d7a877079, 0x881c14ca6d6c4501}},
		{X: Fp{0x21919ac07ae00193, 0x96cdf618b6fd1c28, 0xcae641642d6ed5f5, 0x546d77a7e24b80d3}, Y: Fp{0x8b68da9dd28660aa, 0xda1c02807781d462, 0xc9ad0dff154628e7, 0x4f597eb3a1a827b3}},
		{X: Fp{0x5abcb0008263a5c8, 0x650b5b00201b2842, 0xe6114f7a167a2a94, 0x565915d670ad0550}, Y: Fp{0x861a476b481b188e, 0xbbdc24c0fecebe3c, 0x2002d1493f0d938e, 0x87a2e328a9ee3913}},
		{X: Fp{0xe0a639ad37ea9f4e, 0xfcbfedd0783a2250, 0x0ba69f80ddcb0225, 0x028173d0dc47ab52}, Y: Fp{0x407dcb1db791ac11, 0xb16f1b10f49a7a0d, 0x358a1173dc0b4d0d, 0x3170479e7bd29853}},
		{X: Fp{0x68cacbb90d90320f, 0x64389a836670b6ce, 0x598ef5d2c43c3186, 0x11487451fc4ab57a}, Y: Fp{0x1d597326c8ac4688, 0x22646417fe73f3ef, 0x1fd1097fa475fc2b, 0x2a3cc5b45665e5ff}},
		{X: Fp{0x43a9d113f71af8ef, 0x1bf82aab9593bd16, 0x6d635e1491f73eff, 0x455274a13642b393}, Y: Fp{0x649d9951e8e9f9dc, 0xab0cbcd05a74ea80, 0x25a5f58bef4e0dfb, 0x1ceff20ef6721565}},
		{X: Fp{0xd6ecb35a3b288181, 0x91637df0762e4f2d, 0xb63005aadb8e617a, 0x429592d39dbdb19e}, Y: Fp{0xd016bd02a08b431d, 0x9eecfed43a5a974e, 0x17e29c20244f6516, 0x3f5111472aa48aca}},
		{X: Fp{0x3f897029fc331151, 0x25b907fd496bcbe6, 0xc07574877aa04aff, 0x50d1d9d5ee21ce73}, Y: Fp{0x92beb18dde1ecbe6, 0xea7ffdd389020766, 0x4ea87e35eb5041f7, 0x85f3c10af9d26c84}},
		{X: Fp{0x3f9a1108f5919263, 0xce3a82b2cf309ce7, 0x97cbe807855f5845, 0x997cb2da7101ded0}, Y: Fp{0xcc1b1520d406cc2a, 0x0d52f62f0206c86b, 0x4afccaad2d5012eb, 0x3fa44edb2c296290}},
		{X: Fp{0xd8b480a850370847, 0x23b9cdd73e3e708e, 0x12ba933ddb5f5979, 0x262fafa20d41ec8f}, Y: Fp{0x489173617de7bf40, 0xd5978fec6f74135d, 0x08a470d590dca0e7, 0x3eddfa970e7fb20c}},
		{X: Fp{0x7505163f73317dcb, 0x28ea57499ed5b0f7, 0xf322af29cddb094e, 0x63df436a70e4ae23}, Y: Fp{0x4711466a8cdc1d6e, 0x5aea24d0208f86ad, 0xad26f5e7c76bc0e2, 0x0e7a66060cc9c1f5}},
		{X: Fp{0xd92b539adffdb8ea, 0x31db23a40094e3aa, 0x09245495b355b974, 0xb46f4051541cb02b}, Y: Fp{0xeb5335003594003d, 0x3d02e20970c4ffbd, 0x86cb6230d3e1817e, 0x5f10ad98977646dc}},
		{X: Fp{0xcb2b048b5a426917, 0xc4dbac795994f513, 0xd4d800f916c31fb0, 0x54ce64f01037b2e7}, Y: Fp{0xa00529c2038752e5, 0x9035804bc885fcdc, 0x4e247adaff226fea, 0xa63aa56ef64afe6d}},
		{X: Fp{0x7cbf801c90357f13, 0x6559f571c57d2038, 0xf866b5c876f9e157, 0x8f36a3267e76ea92}, Y: Fp{0x4a7a6881e53666a5, 0xcaebb7e04cd1871e, 0xb49b1cb5dcb12bb1, 0x5b353aa753b537c9}},
		{X: Fp{0x513fccd8350fd06e, 0x809923612b86314e, 0xc159577db4b49d27, 0x72d7cdc619691daf}, Y: Fp{0x6a7ea7973b9907dc, 0x83bf6244853c8117, 0x8559ce078fd99616, 0x21c31ed0df68332c}},
		{X: Fp{0x48eb364a303eff0b, 0x3a43cdcf5439309c, 0x37b5fb41181503f4, 0x66ab4924335d79cb}, Y: Fp{0x7e374e6fe9eb92d1, 0x568b9c42bf4909aa, 0x17185842c0edba1b, 0x6df0a6e3f1a0027a}},
		{X: Fp{0x1ada611b5893e5ab, 0x833642ab8bd6fd5c, 0xdba0ad18f1fb80eb, 0x47c29a2eec238f3b}, Y: Fp{0x89c85c46855146ca, 0xe1b0dda9f3f05a91, 0x98f049aee2b73331, 0x2bad844de03debc1}},
		{X: Fp{0xc55b780a6cc2039f, 0xfe8ec0c5e806e8ce, 0xc49b72472b606e4d, 0xacbcd061a8c345d5}, Y: Fp{0x08abbf30490e2512, 0xd1e58e1e73ec51a0, 0xff45a734a6387884, 0x3c4f8aa9840fd26b}},
		{X: Fp{0xf59631672186455b, 0x59a36859be1ac89f, 0x2c72339793d793b3, 0x21455430b796420b}, Y: Fp{0x0cc63e1f2964f03e, 0x9aef25ca46dd3451, 0x8364e30b610bdda9, 0x5d2bfe348e9657c8}},
		{X: Fp{0x48ac31fc5950c063, 0x1541f7ecc5ad56fd, 0x0e6f923c4235cf91, 0xb5731e677dc7cd94}, Y: Fp{0x65806aa363da45d2, 0x72f5c635b0b51876, 0xcac118f4d24096cb, 0x99c02965042d8a83}},
		{X: Fp{0x651e8676cced1637, 0xea7267a2b086fc02, 0x51e752c433c15267, 0x34179a34acf0c68d}, Y: Fp{0x02484fba8a5b0e79, 0x37c90319789f95b6, 0x0db30f2906f389e7, 0x34bf31df58150098}},
		{X: Fp{0xe36750431c64d22a, 0x7c547ece8f966787, 0x53e3836b2d08207c, 0x40707b5690bd06ca}, Y: Fp{0x874f767181166f38, 0xf9ebe2bce3c900a6, 0x7d124c1aee2dc6a7, 0x99ea9659f030aee5}},
		{X: Fp{0x9193293621afaea2, 0x5625099f37a74d65, 0x789b1e4de484a0b2, 0x1518d7c6988189a6}, Y: Fp{0x61ef870389771c7b, 0x4a18735bc52ace94, 0x5789d3e4e5298c6e, 0x705d8b5e9458c902}},
		{X: Fp{0x69d46029c3e42e6e, 0x9e516c732abe7fe1, 0xe8e933585c68e786, 0x89116e0688fb45ee}, Y: Fp{0xf0504d9e042a8dc4, 0x72a1c0f9ca6cd894, 0xf135704119bfd626, 0x673ea9904cd7a501}},
		{X: Fp{0x2d479c3a8a07ceff, 0xff9bdbccf57bc5d7, 0x785059a43f64df03, 0xa1d98840ec7ff240}, Y: Fp{0x3bc9cd9735726e80, 0x92584210a331fbb4, 0x18ad1e2c035b6fb2, 0x8d096390a49f92fe}},
		{X: Fp{0x765a3bd07962d1d0, 0xee5731b380f739cc, 0x0a6e1d4bc6f3ab8b, 0x0106ee857eb96e53}, Y: Fp{0x15ca2276e9b1766b, 0xb3ae4cfd5c2c0b64, 0xebc6c9f7b3c3d473, 0x28756ec0ec3a4bb0}},
		{X: Fp{0xb3da26d339f6a990, 0x1b86234a2f73a7db, 0x874c08d10e76ea00, 0x3df0b39619c99b27}, Y: Fp{0x74c1449ef07e8230, 0xe7460c4d45770b01, 0x2abc1325136321da, 0x8e811616a1e9eca7}},
		{X: Fp{0xe6a1bc918d85fca0, 0x16afa998993e6154, 0xcce6f1f4feea6e2d, 0x813502a3ad198968}, Y: Fp{0xcf3e02740941b8b5, 0x66279301a82251a0, 0x3e427f684e163316, 0x54f95fd3cb8d921e}},
		{X: Fp{0x722046f1972bf810, 0x3f60b3f5357b5d81, 0xecdafcd553bd0374, 0x1bae05cca2db80b4}, Y: Fp{0xd9d2748988805067, 0xe61a3d635bb52c09, 0x8558895df2aa6eeb, 0x01488c622f0aff32}},
		{X: Fp{0x82096df1b797a77c, 0x02304903d2c09827, 0xb233e3ce58d6468f, 0x8c14d331be17aebf}, Y: Fp{0x8f6d9980bb66691f, 0xe51c842d6819b6bc, 0xf14fb726cd40341c, 0x25903b02acb15001}},
		{X: Fp{0x0071f0a25e781c09, 0x051317cb6001ed58, 0xc4eb48f4745b7b6f, 0x49e094cd8d978a3d}, Y: Fp{0xa26010dc861ca55d, 0x1e88fdc94f9473f3, 0xada400a403ba698b, 0x36226bb29fe51f2b}},
		{X: Fp{0xf0d1a78342ee708e, 0xfbdbed9090570143, 0x6fc9c9eae89c9f5d, 0x6e87d85c2cdb64cc}, Y: Fp{0xc8947e6a03ae0872, 0xaede165a26e05d5b, 0xdfa58eada2495ede, 0x9cb97e677b109c6a}},
		{X: Fp{0x6174a1fb0e036241, 0x32bdef2e9d6c6405, 0x6d497af23922c1e1, 0x118606d24010a8fd}, Y: Fp{0xa9518be7fa4037f3, 0xb3305d01c582edb2, 0x030e8c6238566bbf, 0xb5ddef21cc2a1379}},
		{X: Fp{0x20404c96e0575a94, 0xb0fc7321168b8744, 0x45c8c2f6ee06eae7, 0x3826dd85bf41d3d6}, Y: Fp{0x2a796244dee3a894, 0x89f38e31a69a448f, 0x7010e4c5ac5ac0d9, 0x21ec687737364bb3}},
		{X: Fp{0xdd1b80a474c779f9, 0xbc3702539b82d504, 0xd432e60a3a681c9c, 0x3b130dfe002091a1}, Y: Fp{0x72f9838f5c97c9cd, 0x7cea7f40f829acbc, 0x1886ae81469faeff, 0x368997a70ab0b349}},
		{X: Fp{0xcf4a457604731d6c, 0x8a73c20e1589d34b, 0xdb8940fcd817a7bd, 0xa7480fb2a56b792d}, Y: Fp{0x59b51a5c3458724f, 0xaba54ab21498ffa9, 0x26ec2c3db9a610fe, 0x427955a5e44c2fe4}},
		{X: Fp{0x48b18175f8679cf5, 0xebbe12a380fbe768, 0xaf5a858c1605d7ec, 0xac9515d83252c52f}, Y: Fp{0xeb3d857c305e4813, 0x8319152b92f408dc, 0x83cb99654b5745a1, 0x73324ff85ff8101b}},
		{X: Fp{0xdd4be8e8e321c01e, 0xbfabc7bf982c9997, 0x3e0715c238950c00, 0x3bab1c23f9cb5839}, Y: Fp{0xcecc6fbc28fd1878, 0x03646e1d7fe89d9e, 0x702e95d36d676be9, 0x6c3451844cee09cc}},
	},
	{ // i=25
		{X: Fp{0x2ef7a241fc67885f, 0xab60fea638dea86b, 0xde9f77f2f3ffe78f, 0x552baf4ace07d1e2}, Y: Fp{0xf794609b3b058053, 0x9acc5b8d45e51308, 0x9cf1d36d8114fb13, 0x3a069a29902588e2}},
		{X: Fp{0xbb1cb61dee358673, 0x77f1aa7b297c56a7, 0xbb8721aab5cb03ef, 0x73044ec87b6a20c0}, Y: Fp{0xffa5c7f081318726, 0x02c19ca357781489, 0xd08c7b6ac1df7622, 0x637b66bf13a06cbd}},
		{X: Fp{0x438b09d96563e806, 0x720eef4563e6c2f3, 0x73dcfceb2cc40c7e, 0x082ef9507c6f1bf7}, Y: Fp{0x4a315d73eb372f13, 0x68ff52b9dea4039f, 0x8e6230c589521b1a, 0x5688c5241606e557}},
		{X: Fp{0xf9f22274c3919ae9, 0xbc3ed079b115fdfd, 0x2e0eaf052ca63c20, 0x47998010a1fccc54}, Y: Fp{0x0ad9a92c1c810c41, 0x3016a74fcf97a8ad, 0x4545c961906d15f2, 0x7c17664da94df44d}},
		{X: Fp{0xf6ab9cd23bf3fbe3, 0xc44c91bda4620964, 0xc6427e6318597068, 0x32dfdc3d2d38e086}, Y: Fp{0x1811e9f9c5d5e3ff, 0x874af76a7c310149, 0xbc7fda9a595f0af5, 0x3c389dd5881f2053}},
		{X: Fp{0x053d430155dddfda, 0x04799dc99766f1c2, 0x01d256c8691e65bf, 0x29da28c96fab5038}, Y: Fp{0x580aec047295e269, 0x9dd69e4d33939c08, 0x6cee364d2cd5a0ca, 0x90c29de506f55e0c}},
		{X: Fp{0x97c9796d97e7c9f8, 0xa8e43865221fe994, 0x672bcc8517738ce8, 0x1165318e4aed456a}, Y: Fp{0x987d0c0430e1268f, 0x1034e4bf0497c3d9, 0xd9bf5a8484b62748, 0x9ac0b1616981941d}},
		{X: Fp{0xe2f63ffc7f26e57d, 0x8dbd43ca9c6649af, 0x6960b479f1de43c4, 0x261e797924f15a3c}, Y: Fp{0x19b01f0e568a69b8, 0x989ffdc90c66c391, 0x4f775d9afbf9f566, 0x9dd05e4ee17d2328}},
		{X: Fp{0xaa55b8eb2cd0665a, 0xe70d98c41a26add9, 0x7fa1d0d862bad9c1, 0x1f1e6d35411cc60d}, Y: Fp{0x2397a2d34d2fd3fc, 0x0b6cc3a0cc8adc7b, 0xde02adb1b9d6834a, 0x04a52345bd3cc6b2}},
		{X: Fp{0x296bc152135b1412, 0x8751e60b5f4ad447, 0xb1fe468f96bc22e4, 0x899baed58e044960}, Y: Fp{0x1f44102c29b592dc, 0x201c9a2db3c7db47, 0xfbb8d282e6a71bfc, 0x7306f8fac89b5ba0}},
		{X: Fp{0x7f43185cbece4a11, 0xc593c6f46f5884be, 0x04d88cae6b06fcdf, 0x06d1a77116f76cd1}, Y: Fp{0x2f85d1ce9e940a8a, 0x62394c2ada1ece5e, 0x99bf4e071942a282, 0x37fb00c276f2ce52}},
		{X: Fp{0xcb7731bd8f2c686d, 0xc07c85151193f0fc, 0x4ab61e7d82a0e194, 0x2459a446e2ff65b2}, Y: Fp{0x6867d0e648b095cd, 0x3bf9c39b4c04b826, 0x10ed4de8f0a729ee, 0xa27ae0ee40f9b4d8}},
		{X: Fp{0x2a5139c76442351e, 0xf0645acb29ec6c5c, 0x97c167f6781aacdd, 0xacc9504d35429fd5}, Y: Fp{0x7dccee7c18378f96, 0xfb7cfa9b56549b66, 0x83546162f5e8a4e2, 0x0d09c871cbb45f36}},
		{X: Fp{0xf1662fec7268b4dc, 0x35508bf56389dbb4, 0x5915424007de0c17, 0x75d279f9e2c3d729}, Y: Fp{0xac5703abce748e07, 0x28a2cc72213dc5d8, 0xa557a5216a493eea, 0x55ad78f599a4b029}},
		{X: Fp{0x1db12375c48408e2, 0x680c3228263f0ec3, 0x7c4ed437d85de379, 0x8eedc8f7cfd22586}, Y: Fp{0x09f761e462e02e57, 0x38d9f185f52b66ca, 0xfb68994774d36dc2, 0x90e87280e1094c0a}},
		{X: Fp{0x14eb13f251b512a7, 0x47a6a87105ed0b46, 0x4178309bff4dcbd2, 0x6f948bfbea5ee880}, Y: Fp{0xcd4887e9bc8b1e9b, 0x151f5d451417c6b0, 0x06c220355048acf7, 0x6b56022357210b38}},
		{X: Fp{0x55dbe88f3cfc73be, 0x4614a00066026649, 0xf98544033fb0fc12, 0xaa16ab56c58c8c9a}, Y: Fp{0xc653f6a02340dd40, 0x77a54fd0a5af2d6e, 0x3180a9cef63353e4, 0x7b70894d52916e98}},
		{X: Fp{0xd50b12f7b75d84c9, 0xeaa67e8268533550, 0x873e80b93a970344, 0x8cab8b9b3a215af5}, Y: Fp{0x32bec6de1bd1b76b, 0x3fc819b2ed67138d, 0x7da4a156c67d38bb, 0x69773a25e1ee3357}},
		{X: Fp{0x5342a36cfae7ea13, 0x30ae5661b1ec2dc6, 0x48597f765565fe7b, 0x2734cc7c12670a1d}, Y: Fp{0xcce1205969bf719b, 0x94683ce80bcfef91, 0xd1d612a5c93d1a97, 0x9c1a628c4aa7795e}},
		{X: Fp{0xacc870bd4c4835f4, 0x1476b19111e3c1d9, 0x7dbc497ddeea634f, 0xa777c4d6dc94d1d1}, Y: Fp{0xf00365dc1d673a68, 0x69a94bb92417c631, 0x7b7fcad2178861a9, 0x09686f803e02e6b3}},
		{X: Fp{0x8fe1f551c660de0e, 0x138c3ad7586f7fec, 0x78f90dd7b8b6663c, 0x89dff28b330fed8f}, Y: Fp{0x5aaa4e5ca2e37363, 0x07fd16d4098af16a, 0xe83477528c05cbf4, 0x7f8d5af04f15b2e1}},
		{X: Fp{0x91b3a5af52d406a8, 0x484452a19648849d, 0x087836e563919e6c, 0x359400f38ed13c2d}, Y: Fp{0xb7963f0e1334ee5e, 0xee9204e097b8d87e, 0x8a9702f26c8565a7, 0x205a099a63420aed}},
		{X: Fp{0xcf25a4b347e74231, 0x2ebb053688da4f87, 0x233a2c9d4464164b, 0x301b4ca08ffa4f54}, Y: Fp{0x9d48f649dd08225d, 0xd494a1bb26bb9950, 0xc195e78c41ed44d4, 0x0388aa4747c006d6}},
		{X: Fp{0xf2a9d7a73b4e5023, 0x01aefe8635555be5, 0xcd53cb97c2c65861, 0x91b68977b538a3cd}, Y: Fp{0x5df1fb63d9f75c42, 0x7fa9a5d50e1933ce, 0x3df25f8ca2252431, 0x86fb97511ef7e940}},
		{X: Fp{0x2564ef9e27144ec5, 0xd85f8fa35beeb857, 0x6903520b4231550d, 0x968644810770b9fa}, Y: Fp{0xa0938b897ec065ef, 0x1c1301cdbd4c1ef1, 0x1fc4ecf749c9bf33, 0x47a3430e18ac7e35}},
		{X: Fp{0xe65c7c11a79e587f, 0x9ffbe1970992fbb4, 0x0de725466657970d, 0x7078072afafa0f46}, Y: Fp{0xa72a3842968a9260, 0xad977b50141fb745, 0xa918eb9612ce47c4, 0x72b2d52a6e82512e}},
		{X: Fp{0xaf76078d4f756e50, 0xdc496bec2acf1745, 0x2798eeaf1cad8eba, 0x519b8c8bbe34710f}, Y: Fp{0x0ad7ab6a6ef42a65, 0xa5c2b855cbaabf7d, 0x9b5971776ff31fa7, 0x47b40ef5dc96ea67}},
		{X: Fp{0x9eec5d9fbf4562a7, 0x6634fe680b515251, 0x5c0001eeaca481f7, 0x4c0e62f067a0b66b}, Y: Fp{0xd98ca53656efb1f9, 0x6a57a6149fece7fb, 0x228bfba70a0ea08d, 0x1e8c4e629b0ae295}},
		{X: Fp{0x9fa0fc6df251049c, 0xfb8e59deb6f3fa7b, 0x667d7caf6638156f, 0x29572af0a9b4c8e0}, Y: Fp{0x650a7de1ed2ea19c, 0x4506c22401625cb3, 0xa946380378fab51b, 0x460c7f428916d703}},
		{X: Fp{0xb7b52c42a985d5ac, 0x7d469b99a6c1580f, 0x1524de7f2491f341, 0x5ef87107cf575115}, Y: Fp{0xdc5f5f860466db0b, 0x4939b37e19bb20b9, 0x78cb04a2b7ae2ff8, 0x3ef4358ad919411d}},
		{X: Fp{0x1e0c7dc27ed655c1, 0xabd438b48dd10820, 0xe28e792ed2746f85, 0x1d43c4c0bc4dd24a}, Y: Fp{0x3a9932b0f91271ec, 0x8557953338d0f98e, 0xee83de4a9ae62529, 0xac508239b2a9b959}},
		{X: Fp{0x1b5209c5da96130a, 0x1aee624278a6841d, 0x12f89c875a5e1e11, 0x1a70c5ed7b653e03}, Y: Fp{0xe94a4464e1f9f081, 0x498e77060a219bd1, 0x09f37d9b09ce98cf, 0x67d775494f9901d0}},
		{X: Fp{0xd9a41e765e46e767, 0x55795831263aab8c, 0x681b4ddd2dcbbf37, 0xa415cd2060ccb994}, Y: Fp{0x6f8c3c0da236800f, 0x42ba7e0b0916ac8a, 0xe78a726e738eaf08, 0xad774dc9b9a7ee31}},
		{X: Fp{0x647577e6307bd1d6, 0x1088d00eacedb1fa, 0x9ccbe606d8e5cfc0, 0x6dd5dd77c6cdb494}, Y: Fp{0x49c017b4608c2085, 0x412c32235bdf5ed8, 0x55f063ca58ce33c5, 0x3c85f7edcfd59a3e}},
		{X: Fp{0x4d52cc3e83fb2a79, 0xd02247c7b1c2e3f9, 0x83907ce37ffbbd4d, 0x599988364ab90fbd}, Y: Fp{0xd2c01b9c4f0bfddf, 0xafd1f796b45880b1, 0x895276890d6e0ef8, 0x21541f134035b3b2}},
		{X: Fp{0xe468f2dba0ee7c36, 0x7e63d87e39b18e7d, 0x3643fa4f02764a42, 0x411e27141aaeab28}, Y: Fp{0x28d05c9c71643765, 0x18308b9b648f2e6b, 0x39b513e7b09c4d25, 0x8034402bb0728422}},
		{X: Fp{0x24ac1047dedb4141, 0x2a547001f32eac23, 0x4fbd86a1bacb9444, 0x4ffe194101c091d2}, Y: Fp{0x79368a9d6f2e4f20, 0xce93cb970b83dd05, 0xa639213a15ad7eb5, 0x732e9aed8e6cfdba}},
		{X: Fp{0x77dddb246f39f8ed, 0x62691caf5d84e16f, 0x4aad29d42c208d27, 0x2cc93bb86e787066}, Y: Fp{0x96c2c5e03120e76b, 0xfe67e00d8e4be210, 0xd7a1926b29ade785, 0x637dea88a023e17e}},
		{X: Fp{0xc442a62fb2aa7d72, 0xe9f089f41617fe54, 0x66f3a99dc58aef50, 0x435fb369105b7732}, Y: Fp{0x4291dc680708bd67, 0xddd46ba2f6ca987d, 0x3a874dd78e20afd5, 0x3d9742c5ceba1d0c}},
		{X: Fp{0x8a7d4712b4d2d38a, 0x5272af9e0b279bbc, 0x08a7259cbb45a571, 0x2e7d7d55b070b77e}, Y: Fp{0xe768a38f8abe8b00, 0xecf8b98f42fd164f, 0x3011c30cead59416, 0x8582b721ee452820}},
		{X: Fp{0x41f5efc007d14085, 0xe1137cdd4b0a6b3a, 0x881cc58e3a09213e, 0xa6eca561719d2107}, Y: Fp{0x869e83bdc6687a8e, 0x546b6008645450f7, 0xe8c00c5c9a0bf189, 0x534699985ee1dc56}},
		{X: Fp{0xf4733e90525109a2, 0x920f731f38777854, 0x2c71d8b75338edd1, 0x354c39ccb6c71dcd}, Y: Fp{0x69eaeceb6f79249a, 0xc059d95996b76720, 0xf05b39c77835420b, 0x09b1f069f53a16c4}},
		{X: Fp{0xab55dac7e3d857a2, 0x579cf7bf9ba929fb, 0x4f227febc60818f7, 0xa3622218737b00c8}, Y: Fp{0xe257b73e7975571c, 0xff68d579c374e9e6, 0x274f67b1b6bad4ba, 0x80b3c764ea6074af}},
		{X: Fp{0x654e3fefc84b5303, 0x9722c7eb960f7948, 0x1745ab71e0bf77f3, 0xac630a3fea01114a}, Y: Fp{0x26ba51928fed75e3, 0x3fec1f834cafbe73, 0x4d733403e810dde5, 0x2036960366ef5ec0}},
		{X: Fp{0x49d2b67c5c396795, 0x04eae73eba2b913a, 0xc53fe008966a61d1, 0x2fcefe0a7c59cfdd}, Y: Fp{0x8ff1144650be0b8d, 0x59c0ee18545af9f3, 0x1f69caf8a8ea1fb8, 0x712328ddd481ef19}},
		{X: Fp{0x12cbeca243a07f9a, 0x9e47a5e641e18429, 0x498c8abd353f8913, 0x83f28ef54b9588cf}, Y: Fp{0x30327bce27a00b56, 0xed8fbb99ec2f13b7, 0x298901403d7880ab, 0x503afdf94a995141}},
		{X: Fp{0x3d0678bebefb2fbe, 0xd606a4442c707ceb, 0x75624643ff0e40d4, 0x6ac48aa707744bc1}, Y: Fp{0x97e0687563f3f702, 0xc2dad44b4e87b5fd, 0x3d3cb868e14281a9, 0x52a257bae24d9c8a}},
		{X: Fp{0xacfbd24268fc55a0, 0xb9e7bda8e5ff0b09, 0xe2abafe1fa132f8b, 0xaac65a52b4dce818}, Y: Fp{0x2a6168c8b6412e9a, 0x8cf965c3a5071ff2, 0x841129c6c0b7c013, 0x3d4dfdfd4be897bf}},
		{X: Fp{0xfa6daf8f8f96ba85, 0x618045c84119d137, 0x09041869af4c7996, 0x80f3b66b90a40342}, Y: Fp{0xaff608387d10dc48, 0x41d399425b66b104, 0x4ddb3ba4da7b38d7, 0x6610cb53e3e3eec1}},
		{X: Fp{0xd6cb45d09940ba80, 0x42e2988e8e23df27, 0x74aa596dc388fdc0, 0x2a19b8a8b2f2eb69}, Y: Fp{0x420ae2f4fe6865bf, 0x8b950c3478523db5, 0x60f7c0ccdf8bd583, 0x856c40b68d6465f0}},
		{X: Fp{0x7da27c071c6e786a, 0xd0ced6ae16a4d61b, 0x0c36c0c2b17982ce, 0x60339f23b75959f5}, Y: Fp{0x4b8e2c1d3030bc58, 0x70cdbccec92206bf, 0x64638c723b1e6dd5, 0x6c185f157ee8f7ec}},
		{X: Fp{0xfbbe5609a39060bd, 0x7305a6646a9dc4c3, 0x8c1bc6b06793506e, 0x02bf4245c9735c32}, Y: Fp{0xf7d0eff10f2a0826, 0x0db940a534ccbad3, 0x10e6bf823d243db7, 0x3c481e43cc854ca2}},
		{X: Fp{0x7bf3ad845fba0038, 0x3103ffe3933edf9e, 0x7960b4eabc88e119, 0x47cb575ba5332ba3}, Y: Fp{0x6389bdbe755ba61e, 0xcf101ba0592c1eda, 0x2735ec903efb8f2c, 0x06ad5b2273d25319}},
		{X: Fp{0xb9a9d09b1b761412, 0x3f8b3bef97022a61, 0x42ac01634a112db8, 0x905827bd917909c7}, Y: Fp{0x788bffecddbe546b, 0x5342e1f8969aafc4, 0x014251ac5150f589, 0x41f42ec6e998a4ef}},
		{X: Fp{0x1077aee352e7a507, 0x8be045f8205514b8, 0x3c1c71704d21858b, 0x08a4e2307572943f}, Y: Fp{0x2a9bdbcd6d877bbc, 0x9f4865d3d9acf998, 0x69656096e6db585e, 0xb07198b0e273f920}},
		{X: Fp{0x7a8a513c80cc54dc, 0x28312dc2c5240668, 0x19879ee2abdaf010, 0x9a11bb2dbb4a4ac1}, Y: Fp{0xa14ea0c1361f83da, 0x5a6ebb490660f8aa, 0x8dd1687215dc702a, 0x2063ff43f7a5e28c}},
		{X: Fp{0x43aec21731119146, 0x8096e30d4e9d4eda, 0x70b61ec5da7679ac, 0x6877adbd5f47a7ae}, Y: Fp{0x85feff004abefb41, 0xa0d2d7efafbb2424, 0xf8f32d9a0fddeffa, 0x30d2d9200aba37ec}},
		{X: Fp{0x30d4a6d551c81e14, 0x43d5faa1f66bbe93, 0x35dafa8ce1a83e13, 0xab193b69f08fbd1d}, Y: Fp{0xbc06b9cd171b888c, 0x9efb8a5219328e9c, 0x9f2cc229ba9d043b, 0x9a221fd74d23f6d0}},
		{X: Fp{0xa9869ed8caa4172b, 0xe7de08078ed3d426, 0xbeceb6bb66464a71, 0x2fb028ae00750bad}, Y: Fp{0xb5ec709983474ef9, 0xc7cb9a5b2159545a, 0x4cd96af6b1c2ceb0, 0xa400332fd7610ff8}},
		{X: Fp{0x50fad4f34efd1e96, 0x9aa219d18337aaf2, 0x4a9b05664e90eb41, 0x82a5f520da981783}, Y: Fp{0x5de159ab3086ff31, 0x673e398449d388bd, 0xccbe30f536477c05, 0x89ead6f0617cda87}},
		{X: Fp{0x945809abcc040a91, 0xdcd575a2ecf162ed, 0xa93d360f38ff6dfd, 0x85c87ad9b508a5a0}, Y: Fp{0x53da2feb1181210a, 0x3e23fb942f0f8d22, 0x7f56eac0dfd178d6, 0x10f48869e8e9ccd2}},
		{X: Fp{0x3f29c44663ef09d8, 0x20d2a27949e852e7, 0x8ca7cca999fe615d, 0x36031663c80e75d9}, Y: Fp{0x1293f550ed352441, 0x30ca1d35980287ca, 0x3cf5c897a54060b1, 0x3d9ac062faef564e}},
		{X: Fp{0x1dcc619201988657, 0xe772721b3663db25, 0x113a2907781069d8, 0x5fffbfa38235fdf7}, Y: Fp{0x162c43ef70ee46dd, 0x5100e65527247450, 0xdbf23c3626f37309, 0x5a3bc4fe55a2b8c4}},
		{X: Fp{0x3812bb447bf27d1f, 0x958fae2d3cb6601a, 0x70bde6b2cd6dea8b, 0x9ce19870f12beeee}, Y: Fp{0x670fa920ae88db9d, 0x76c93533460019c4, 0x28c96159dfbcafac, 0x809cbc709cbd6364}},
	},
	{ // i=26
		{X: Fp{0xa5188b418fee131f, 0x7f31972b62e87d24, 0xf470ddea3069453a, 0x7d3a79ca88a6f01f}, Y: Fp{0xbe04ed157d7649bd, 0x056776163efa1371, 0xafde49cc626c58b9, 0x3b4fcc56fc3199d2}},
		{X: Fp{0x5410f110b2be4210, 0x93f1e69bdcbee13b, 0x25f83a38303a5e7b, 0x5b550e2b8ba101d7}, Y: Fp{0x589e2bd18a688754, 0x7575bfc5a64773cb, 0xe9880dcc6d7362d2, 0x72cd9e09e81437d9}},
		{X: Fp{0x04d61379417606b4, 0xef6fdc42b8e250e7, 0x600732fe40a3c591, 0x7ead59f48c86df14}, Y: Fp{0x195964835067fc1d, 0x4599d1274ee88cea, 0xe4ab65e7d6699e31, 0x359b7eac9f7fb424}},
		{X: Fp{0xa4333bbef0ae0fc5, 0xebb82a05e75c2e8b, 0xa800e757355c776a, 0x53ec6d20e90fbb17}, Y: Fp{0xce65b130eb3414ce, 0x2bdee9866634cadb, 0x937579cc7df40967, 0x2ca3b3eeecca4e5b}},
		{X: Fp{0xbc66a686a92ce38d, 0x9e337c2ce2535e42, 0x36e288f9ef297564, 0x43e306b9976f9183}, Y: Fp{0xa9751d79c675cf34, 0x74d2da1aeccf7ad7, 0x8e29a38102e57586, 0x317d39fa702d5860}},
		{X: Fp{0x409100095a60caae, 0xa85ac1cefad804a2, 0xe8f5986726ce28a8, 0x33f2659bb7adaf65}, Y: Fp{0xf3bd633f9aefd776, 0xa4a585ff876f13ce, 0x2c98958e623f6cc2, 0x055ec72391dfae50}},
		{X: Fp{0xfdce4fcc15b97f1b, 0x71108b2a05ae6a7a, 0x0b7f5cffe2c1dfd7, 0x8a9d50862a070bba}, Y: Fp{0x1c20d621839cbe02, 0x3bced82da7991ef6, 0x40d0e1186f1e8584, 0x17b9883ecd8e1b05}},
		{X: Fp{0x83cfe5d469748737, 0x07384ab2df6d35f7, 0x226516b9e3dda5dc, 0x144cbdf8395492a4}, Y: Fp{0x79e4513f2b621615, 0xd3c798e7875b9241, 0xef6edc688ef16069, 0x6bda4b4fbce56343}},
		{X: Fp{0x03c5edc8fe2be542, 0x470e5bac1c977a78, 0x51d3723abc7fc40c, 0x2a7ddfab2d5880f5}, Y: Fp{0x551cd718d0907259, 0xd5a03cbdae757907, 0x26a0c1afd66ff4c9, 0xa3b77255f353dfee}},
		{X: Fp{0x7a5ac693b63e6dbf, 0x49998c70a0857b7c, 0xa45f52f2976892c7, 0xac514a6b3c5458f5}, Y: Fp{0xd716962dfde4f97e, 0x91e0fccafae87810, 0x4e9cfc9abb2cb88c, 0x49144498055eca60}},
		{X: Fp{0xc9183f2a448609b5, 0x68ed1b25e58b8787, 0x6c3bd2dbdffbd47f, 0x836790e663564e63}, Y: Fp{0x50593b5594264c89, 0xd34252d7c83bd318, 0x99476c336ebe0919, 0x306cf79dcc6e6063}},
		{X: Fp{0x084e721ccf2e3679, 0x1527db965afa6d91, 0x70476445bd915f5f, 0xa12d8338ec1d11c2}, Y: Fp{0xcfae93fd1861341e, 0xe27a9f8bfcb2d0f8, 0xe8ed6455b71b9810, 0xa2db7a50ce2840d5}},
		{X: Fp{0xa73c2d046ce3f903, 0x8283e3785ab23aa3, 0x3901e3797fcffa44, 0xaf81619798ea7cd7}, Y: Fp{0x6cfc442755ee2fac, 0x2a035e3d25a056c5, 0xed0ebd4b8cc98430, 0x89d846acd49d23d4}},
		{X: Fp{0xd944e90a73396373, 0xd5a92865e585638f, 0x68210e153a44d00b, 0x353a40c2b9f97d30}, Y: Fp{0x5d4620f76cee05f2, 0xeddd152eeb5207fb, 0x4695d4b2ef10ccdb, 0x0199100e38f47c5a}},
		{X: Fp{0x9e4debd6285a7659, 0x39a81d5e319ca66b, 0x00cd377c8366b3b6, 0x2d9276aafe9de484}, Y: Fp{0x861d9bbcb911ff29, 0xba75ba2549a022c7, 0x48994fab841c087f, 0x42c73b82e0caab7d}},
		{X: Fp{0x644031a19eaabf4a, 0x7e382009613c077e, 0x63920f95d43b921b, 0x6a8851e856015914}, Y: Fp{0xfeaf74288dd03b2d, 0x8940cb6f18f83551, 0x4db70baa7cfe3004, 0x8feb92f4dcaedafd}},
		{X: Fp{0x6c0b5c1b327207af, 0xb24dcda9ed61cd27, 0x6187e61192ddba3b, 0xa8e5b1920693bb8b}, Y: Fp{0x744cba3564e34ede, 0x68e4555ddd15b337, 0x671244d075776c7f, 0xa7b40da9574c461f}},
		{X: Fp{0x5d02cc758889d6d7, 0x8b1adf0d1584a6f8, 0xceb9fdb13a8c9ff2, 0xa18e8d93d8338d08}, Y: Fp{0x2df5c8dbf98291af, 0x1ed42d90f593d479, 0xcf104116b691d78f, 0xafabe95e6028efb3}},
		{X: Fp{0xd380c8c6560d70cd, 0xb53836f35674fedc, 0x54a576bf77bf5555, 0x5a35b5c94e9146b2}, Y: Fp{0xba1127b4181be530, 0x56ecfa8552ef18b9, 0xe94ac7591626d558, 0x55d185dd2141e5ed}},
		{X: Fp{0xdcd66ae7aed8562a, 0x62345fb39191f8e8, 0xe7afdfcba73bb6ef, 0x8310b84759e19f4f}, Y: Fp{0x81d69e12840f6e41, 0x979a1ce3b59365e3, 0x7f1b6c57c9d21ed4, 0x998c585983a2fda5}},
		{X: Fp{0x36b75a737eb7d4e9, 0x7da7c4d67a38931e, 0xfda8be2188bec999, 0x8a042d428e6a7505}, Y: Fp{0xb0374fa5c54e9cef, 0x2bc2ba8c58fa2314, 0x0d648c3915745090, 0x118e325dc4a74dc0}},
		{X: Fp{0xea81e98479445239, 0xc8ac5fe7b7173549, 0x976cec27f2286ee7, 0xa3e29f43a53622cb}, Y: Fp{0x063c3fd8bd0e396f, 0xa98bfff1faa26bda, 0x93d0ec4a58247720, 0x368b453c57a8e5d7}},
		{X: Fp{0x5c5d526b31b0e2ae, 0x4fa5a86f518e200f, 0x84f5cdf2d14de9c6, 0x3ce3d0e347cb40eb}, Y: Fp{0xcaabcc2ada8facb6, 0xc879ab989bb6807b, 0xc407d8b892dee3a0, 0x0aa49b2cde10df1d}},
		{X: Fp{0xb799adcea5a3f56e, 0x02d20a2e43142ba1, 0x49da2b05828b2757, 0x6bcf9ff17d4923b6}, Y: Fp{0x4009060c2f617300, 0xf3e1b927fe3e78dc, 0x7cf271ddb3a90426, 0x2f1d85b6a4f4c9c5}},
		{X: Fp{0x12cdf102ea1ed4e0, 0xe826860401838ebb, 0x7fc24709120735e5, 0x672f34b3489e1261}, Y: Fp{0x6725561f71a0f9b5, 0xbf6a29c4efb1d336, 0x5ea6a09451c76e90, 0x7c02a16494a2400d}},
		{X: Fp{0x3794a3df512ec3d5, 0xa56cc42a0ede7e7c, 0x33dd855316acdb2c, 0x465ea96de9390bf7}, Y: Fp{0x90fb865bb0e851b2, 0x50263a9c772d6b29, 0xfd8b7cf5175f469b, 0x7d6d070876be405f}},
		{X: Fp{0xd7a8344b704bb311, 0xa3a27c0d55019fd1, 0xa4e5787d61555cb2, 0x7ebe40db81bec86f}, Y: Fp{0x2db4af29c67f8028, 0xfd913be8f5bdb9b9, 0x7d5e1c47e346114c, 0x94cee394f6e22ed4}},
		{X: Fp{0x1c4f899c779d42dd, 0x7779364af09b228d, 0x14b85afe5d5d5f20, 0x582470c44e0f4e6b}, Y: Fp{0xbc722c109d9df756, 0x3dcf6ae7a4925148, 0xf3602dd4273e3920, 0x697b42d58bc1674b}},
		{X: Fp{0xb95c8e90da557160, 0x36e39c8bc6bca817, 0x91f9382c00631765, 0x3613b230f344890a}, Y: Fp{0x3b2c22a25516b9f0, 0x585827f0637031be, 0xf0b42555532f60a6, 0x8e8e3ea5f85eac13}},
		{X: Fp{0xc4405dc87d224da7, 0x1131dc7b5c37c4ee, 0xb39d9df8bccee7db, 0x7b64539cf24a9040}, Y: Fp{0x4426bd7fcacba823, 0x35ddc0778a62bfc8, 0xc9ed1cf004f22d3e, 0x01072d0f36381889}},
		{X: Fp{0x9924b449c5f777d6, 0x254efb9b186f3a04, 0x91471f2ee18e84c3, 0x6a9e0e7a689138bf}, Y: Fp{0xcac810f4873f6d92, 0x3ff8d38b4352e6d5, 0x19daa5175603468c, 0xa5938a488c9dbf36}},
		{X: Fp{0x035c07e3aa9a58ee, 0x63d3303301b8f9cb, 0xa3a0787a4b59c894, 0x11f3546d97b5b075}, Y: Fp{0x9e5b029ee6e0818c, 0xbb4fd14af38c93e1, 0x45d012a110e4f386, 0x04c8d35f07b67ee6}},
		{X: Fp{0x8cc232df28a81acd, 0x6c43fd2e4e4abf7f, 0x1098cf8415aa7a5d, 0xaaa0f3005a22cb80}, Y: Fp{0xe58ed11e6ab1b6a9, 0xd8c88f3c011c3b44, 0x8d406267c0c791f5, 0x26bcf9649f3fc121}},
		{X: Fp{0x5e059f5e9fb88974, 0xb687e2f3f623e554, 0x7f8760432e86b3a1, 0x365c216e3c74d5c2}, Y: Fp{0x03df1ad1d547d375, 0x493e4c98baa10efa, 0x29acf6c41a667fb4, 0xa1f9fbdd5ea5a087}},
		{X: Fp{0x2491cda0f15f3b5a, 0x3de203e4fa462cc3, 0xb867628b9a661019, 0x1a16375236619289}, Y: Fp{0xd4cd99c6bda25d23, 0x830b71af350de0cf, 0xd198bfdec259576a, 0x4d92e8c88fc2c9ea}},
		{X: Fp{0x665444f3423cb567, 0x04368e9d2ebaef48, 0xa12d92aa80bf14da, 0xad00c34e69c3b942}, Y: Fp{0x24c47cd52765d8f4, 0x22e2f935f26dc16f, 0x5c8a0eeaa98dae75, 0x143846ce7fac2435}},
		{X: Fp{0x74a0003f0869bccd, 0x26a78cb71997a1c8, 0x3ef4eb4b355d6cd4, 0x678c63f0f1bf906c}, Y: Fp{0x2abf71ca27dd5a2b, 0xf785874227a3d921, 0x65545ad044f518d2, 0x3e8d96b180a0bc01}},
		{X: Fp{0x9205277cd47895f2, 0x5424dc3f613e6fcb, 0xa46a8a4ce65dad38, 0xb1ef9dd139720a97}, Y: Fp{0x58a997c9ccee28a0, 0xf2528ba1d83901e9, 0x103fb73ffde133c6, 0x3f469edd38695151}},
		{X: Fp{0xeebe4125921012e6, 0x7ccd0f2d507de396, 0x14a5e40312f4ddde, 0x71e1473b1526c8e4}, Y: Fp{0xb3eff704e4a91ff5, 0xdfe71c08d939ed19, 0x6c39ee56da8c667b, 0x0631b6db5a0648a7}},
		{X: Fp{0xbd9457f4a3147bde, 0x4fe4869c53b1287e, 0x37cc753faa16f304, 0x02ea64afae9a3058}, Y: Fp{0xc3fb7b985d3a5f44, 0x65a5167835313b06, 0x10ec12dc533d35b8, 0x28d7fd59bf284048}},
		{X: Fp{0xbaec6fed622cbab8, 0x4ed9853c0c3f2ad7, 0x7b6f96c2ca87bf78, 0x98846e6a4eb3d596}, Y: Fp{0x7316e0123fe1c4c5, 0x9f8d53c007da369f, 0x9a54f4be40f5c128, 0x592080c2623d6855}},
		{X: Fp{0xc828ccc5cfb3eee8, 0xf5e6bb8f7e1cd28a, 0x6705e75866a3fa56, 0x28b3b4d9a33d6ae2}, Y: Fp{0xba12d2ee10eb4927, 0xe00e953667281a4c, 0x440ce5867e87d519, 0x1844fbe09f25da61}},
		{X: Fp{0x6cdf76760e4649b2, 0x48d96840eb78d0d8, 0x54696ae17eda7786, 0x38f673ab0b8b1c8e}, Y: Fp{0xa9a47ea8d47b2fc3, 0x39e756f398a9aa44, 0x0f438849a28e9f41, 0x12f4d698c09c52b9}},
		{X: Fp{0x498fad1f6544f102, 0x608b117d2a4decbe, 0x422f96163393a935, 0x707bb0d9f004a49b}, Y: Fp{0x5d020f42e0d5195f, 0x1c85c388647ef683, 0xe8ec37c642be7922, 0x802659a28aec5056}},
		{X: Fp{0x6a4c92635aed3b1f, 0xa7c4873d3766faaf, 0x7b9d963abeb4c736, 0x9a46a32bc7f98b00}, Y: Fp{0x3f887aefcccff9ba, 0x54453b12f4108770, 0x13763a32d454661c, 0x0a1b3d9952107595}},
		{X: Fp{0x59a125570803f752, 0xe2b1e64ee1e3acd1, 0xf824fa3db989d76b, 0x901fbac1a332a368}, Y: Fp{0x370e30c8d6c0f580, 0xd5eb28e0dbd38ac4, 0xd80db041247cb9e4, 0x82cd2b5aede069df}},
		{X: Fp{0x517de2acb1d75b86, 0x27822d1b0a74c2ed, 0xdc6f2e697bc12d5e, 0x305586a925fbe7d5}, Y: Fp{0xaa78d1fd168ea777, 0x978718874feff903, 0xc5ea8a9e9ba3f0e5, 0xa342008e4a5ac389}},
		{X: Fp{0xde0d43f7f7cec2b4, 0x39573ccb0dba9565, 0x4ef7f9fa83d6effe, 0x4c3995b6efcb4ebf}, Y: Fp{0xf3dd9f1efb0ee126, 0xfe143a1eaba014b9, 0x05848336a99d5bba, 0x25d05807aec2dd40}},
		{X: Fp{0x1859eddb080d4e6d, 0xaeaf116a01aca71f, 0x1eea96f57bc65696, 0x4cf34a260b4d376a}, Y: Fp{0x627594139a5b44b7, 0x02aba9366eea88ea, 0x6873fc0e6d9e29f6, 0x51a270ba48ec8f83}},
		{X: Fp{0xdfe883d572beb360, 0x0ec304c37f169dfa, 0x92716ce131505608, 0x67ca2d58e6c38631}, Y: Fp{0xf1d9002e055803ab, 0x83b1ef53b2b26e57, 0xa57398cec5c041af, 0x931a1aa9093e49b7}},
		{X: Fp{0xb30e8313dde4921b, 0x2511ce8f48c05d2b, 0x6b75b4d27f168d90, 0x5488ebbeff4cbd20}, Y: Fp{0x7dbab57de81120a1, 0x7635284bd8c9569c, 0x74bd06ec5cfe6497, 0x0e3c6a5243efbf67}},
		{X: Fp{0x472e037b673cdbc3, 0x47a1b36b7c4d23e0, 0x6d440188f72203ac, 0x069b0b50e8b4c8c3}, Y: Fp{0x5ea3841db1e5fff0, 0xb9538a6af399fc1e, 0xba9d2d0e9ad47a92, 0x01f4bf5400315c40}},
		{X: Fp{0x831028dd0cdd2ef7, 0x73de8a90900e8235, 0x32f963080b4b480c, 0x0bf9790a7f880539}, Y: Fp{0x6bde9ec04f192bc6, 0xccc27ba48a3becd0, 0xc840595d7e46a622, 0xa586d68af32a97f9}},
		{X: Fp{0x160c749b88714ae4, 0x192006704522b31f, 0x3f6f25520cc9bf44, 0x67599292c0614097}, Y: Fp{0xe126b3040fc87836, 0x8abacf5f80b34f28, 0x915d2d09c8a5f895, 0x2b5925eecaf1b209}},
		{X: Fp{0x37e9ef5b46f73f03, 0xc808cd5f796e6660, 0x955b8cec43cce2dd, 0x2dbdbe48a744b2d2}, Y: Fp{0x59b8888357fca35d, 0xe86b56834a41a6c5, 0x59cd74bd194c54d6, 0x157e07f19ab37d0c}},
		{X: Fp{0x43ca138d1837f432, 0xa40135220d721094, 0xf43cc6ddc1b7922b, 0x6d138d8458eb3207}, Y: Fp{0x59450c15fdea2d93, 0x032141230bcc1baa, 0x940381349bf07ce8, 0xa2d2de42df122701}},
		{X: Fp{0xdcdd5c72c2ca5002, 0xecff311632618f5c, 0x61d609bbc77f0479, 0xb06a074cc7e7752f}, Y: Fp{0xaf1520747e15a02e, 0xf77f81736e432456, 0x2c94c5e7a930bbfe, 0x3bee36dfd67f1898}},
		{X: Fp{0xa058f34e022c3b5c, 0x09d7f865391806e2, 0xdf9a6bf8710b3f70, 0x087fb3e3b7cc013d}, Y: Fp{0xadd5e69a4ed29424, 0x7f01a505e04712c4, 0xb0ce42ba4ba5cfb6, 0x09510c65703bc555}},
		{X: Fp{0xb833d4388e6e4d3f, 0x0be4b5d5ed818c7c, 0x658ea882e784ae4b, 0x13f0ecef000c8ef0}, Y: Fp{0x06d3c7300976d97a, 0xc45fc931e71f8547, 0xce7cde9f6f722579, 0x88f2ec6759919ce6}},
		{X: Fp{0x217224fd412b377a, 0x7cc5884ff74a7e62, 0x2381fd8ab07b87d8, 0xb0607c89f4f4f353}, Y: Fp{0xfe1e9041f4786791, 0x389647a17bd3b23a, 0x9e62a2a311e18a73, 0x9ec242d2a91b7b11}},
		{X: Fp{0x1a6bdcd9364bde22, 0x14f4a98aeede8d11, 0x22f570330ccf0733, 0x03f2a6dcd060d69f}, Y: Fp{0x78f1d4fcd88f2fc2, 0xf0e7f6490d6c4c76, 0xac096e9952434d53, 0x940fdde6db0f26e7}},
		{X: Fp{0x38b1b842b033cecb, 0xfdc8712b7b23b3c3, 0x0eb4ab40a69b4a9c, 0x3092d7f500dbe6bb}, Y: Fp{0xbfaffa838fa0bed0, 0x33f9faa7e0c87d87, 0x627eb0283461b0ee, 0xb4593ced215764d9}},
		{X: Fp{0x4f22059de716c35d, 0x8e94b48029f74797, 0x7d7c59f3eb761ffa, 0xa70b155522780b30}, Y: Fp{0x750b809432f10ec2, 0xe006f165f2fc41bb, 0xca65e7f2a245ee18, 0x497c8a586425136b}},
		{X: Fp{0x6096d2130f8114ee, 0x4e7a782551a1255c, 0xb36c6fbc9768d5d7, 0xb0e2d204b3ad4c8e}, Y: Fp{0xfe0299ce8582f300, 0xf710d260a7001aac, 0xf7c54d1abc7d9e6f, 0x9c09a64567b35446}},
	},
	{ // i=27
		{X: Fp{0xc2a6ace6713da7cc, 0x26ead57ffaa71a72, 0xcc36b70181f0a7a7, 0x8bde4d953b940419}, Y: Fp{0x2e2ed905532537ad, 0x439f4da41d8015ab, 0xd6e87fd7d6ddd51e, 0x6435cfbef6c85550}},
		{X: Fp{0xa00e4aa92073b99b, 0x02e3f591aef8133b, 0xb7100cf077e81bcd, 0x2c61d526644c8147}, Y: Fp{0x7ffee110a4094fee, 0x9cea3c370c0c3b32, 0xb3ebc2a21bbb691d, 0x2a1b2e41c08c5418}},
		{X: Fp{0xb7101c45cc67bc34, 0xdd12e5fc5371f0c3, 0x3d45f1a860545223, 0x5b356932b8852e96}, Y: Fp{0x84797f5606adc55b, 0x2dd10737f361dc4b, 0x60bda693438d82ea, 0x375141b59fe27271}},
		{X: Fp{0x65316535dfe4c914, 0xb8ce71ac8db5c755, 0x94a3a35b53ba3781, 0x487d4dc98ebbf0c6}, Y: Fp{0xdd3aea639cc74e89, 0xa7016e4986a6cfd1, 0xc8b89a082a50e71f, 0xa005d619da3ab6b1}},
		{X: Fp{0x03bcfeef1701ff9b, 0x41fa65616df11c4a, 0x53132043a817592e, 0x70c2d76387fc95c1}, Y: Fp{0xc541629ee985bb63, 0x34c66e0411410280, 0xa5b5924131ccdcd4, 0xa96c69acc31057ac}},
		{X: Fp{0x3f0f5734654f2f47, 0xeeb40f358a3b29e0, 0x06eccc5731dd4233, 0x61f2cde7280f547f}, Y: Fp{0x4c13e3b3fdee73de, 0x7f755618450a127d, 0xf7b8ecfc9baf7850, 0x2084a1a2adaca365}},
		{X: Fp{0xc6bdb0d67709fba4, 0xaa6159710f6f1deb, 0x716411e4a3e182cc, 0x30d1c3b203341d8f}, Y: Fp{0xd29815a1a812887d, 0x330a99210e3ae3b3, 0x707ae58ea589597b, 0x6ff162e18dbc05d0}},
		{X: Fp{0x40e1c1513da71eaa, 0x71ed359497847585, 0xa45a19d19b1e6f33, 0x84b7412821186f41}, Y: Fp{0x8bd69894806e3a1d, 0x0b0ee7ab013af20f, 0x7cd371ed4e97c36b, 0x68563ee8764f345a}},
		{X: Fp{0x87321697f7bd9c7f, 0x5068605f098dc38b, 0xb64511504a0ef0c6, 0x381c22d1320f29a3}, Y: Fp{0xdb10a79c01e154ea, 0xec58298b32fc8d6c, 0xf4770ab4b0b3933a, 0x7149719bbbf0c47b}},
		{X: Fp{0x43250482eea3e3c3, 0xd75a285785d9e213, 0x12c9aeeadc416979, 0x3ab1812784b0bbab}, Y: Fp{0xdf3620eb9f18868f, 0x5e9614fe7b33f330, 0xeea86be87d37e296, 0x48527fffba7d8ffb}},
		{X: Fp{0x47d6d7b752902e99, 0xf1904b921c20e29d, 0xd86fa4da9b94d709, 0x0ee4be02475deaa1}, Y: Fp{0x17842b8908065443, 0x95403f419e052627, 0xc9daa842a27e7aea, 0xb04ddc66982972e9}},
		{X: Fp{0x9b2af648dae08dae, 0x98b629d4e1b6e419, 0x060129e93424117d, 0xb1662adc88222b23}, Y: Fp{0x6df6d483c6514a62, 0x6ed95861def38dd1, 0xf2ac044d425f02d2, 0x6a7560708cfea553}},
		{X: Fp{0x8ef218afde5514e6, 0x82304a2cbf9c2ddd, 0xb3a70f9a16c0b31a, 0x65f337e44a59c08f}, Y: Fp{0x4bff465612a180f0, 0x19fa6d7557077626, 0x60aa91889ae0d55b, 0x134d967c1769ec19}},
		{X: Fp{0x895c6b33d16955ca, 0xf2a5b6ddae239905, 0x9d4696f670f767fd, 0xa12eed94c8031094}, Y: Fp{0x49e1103b04063543, 0x2b15a27d6db5428a, 0x26bfed86d3c4696a, 0x348d421cc9dad82d}},
		{X: Fp{0x83093589fc359067, 0x5ee6224e8258b54d, 0x75adeb293fdd5b2c, 0xae7d50086e0fa4ac}, Y: Fp{0xd7aad27c6e8ee923, 0xe1b1ac60145bb7dd, 0x5a01744043d40819, 0x5250e68e9fc7e6e7}},
		{X: Fp{0x5fb2f4c0d9ab07ff, 0x82b7a03ceb8da61e, 0x0d855ced7957b89a, 0x8e462fbfb4281c7e}, Y: Fp{0x403d8b42b24d85b5, 0x3b81000c364857d0, 0x1f539bdcc76cdb61, 0x96deaf678b82331d}},
		{X: Fp{0x46b2b3fac7a9da69, 0xe948ae0e7267004d, 0xe3b13826b87ca452, 0x23ba55921111f28c}, Y: Fp{0x6cb116d9284480b4, 0xa1b2b6529383c75e, 0xc180d9063c2c2cc8, 0x58d24f1475415b5e}},
		{X: Fp{0x5383156afebc35b2, 0xf64fe5d97b9fc2f8, 0xb3a9b7d18c7ee2ac, 0x5302fb1d6b266e1c}, Y: Fp{0x14dddc0217f00026, 0xc35bfd52eeb2c038, 0xe9de1623a967e12e, 0x16803ba0b58cf819}},
		{X: Fp{0x323faa932519f5a4, 0x07c265486656eb4b, 0xf6308cecd4e895c2, 0x5cf5388c1acf32be}, Y: Fp{0x1b37b089713d2488, 0xd4972bcab4f33a39, 0x02680b7012aec1a2, 0x2087442611e63680}},
		{X: Fp{0x68db5727e73e4ec2, 0x65f09aa663b21d3c, 0x7e967df6148617ac, 0xb0a1ec835b54411e}, Y: Fp{0xab88ad3b131f41e5, 0x3ee60380f25f36c8, 0xc403fa8a9d5d87d3, 0x1d4e97212bba5271}},
		{X: Fp{0x7b7f25bb2cf23e65, 0x797bb2d4ad017fef, 0x7c6448477f13aa82, 0x9d39ac68aab9a781}, Y: Fp{0x98b8a55ca37e6eb3, 0x2560b38f82ab460f, 0xdd399dbca76c8ff6, 0x9593968727623180}},
		{X: Fp{0xb39c9fee524ee775, 0x833c2258fe465da2, 0xad58cc0f74bc357b, 0x043be8408e810c25}, Y: Fp{0x23c031f0de36b4ed, 0x7201d2ee86a77c31, 0xa0dbde40c1df287c, 0x2fffad6a5c98791d}},
		{X: Fp{0xd4e81e5afcae53f1, 0x858c1abc92ac2fe7, 0xd444877b00670309, 0x24771e7d5552c4fb}, Y: Fp{0x93ec9ff72c61bae2, 0x8c610b617920075e, 0x6d2788b2ae796612, 0x5f97520f5bbdf57b}},
		{X: Fp{0x6d0aaaa2aec8637c, 0xfa98ede4ea3a8458, 0xbfce0eda6525679c, 0x893f92d196321206}, Y: Fp{0xddfe84c3da8c7901, 0xdb99b799fb0bec40, 0xa93f0c8b62afc695, 0x2f1d5a21b0aff31c}},
		{X: Fp{0x1da8bc326436d8a8, 0x1bbbed0f0abf90b0, 0xb814c138a42780f2, 0x7f7739cdc8fb0837}, Y: Fp{0x3eebbd698133485b, 0x8da740993af39b9a, 0x3fdd6d6e31026abf, 0x293337c1088a3fd8}},
		{X: Fp{0x9eb3ae1b12b87a9a, 0xa5e1f844ab01d0c9, 0x71efa907d27ae6b5, 0xa84abb6d7e66f904}, Y: Fp{0xf75f155fae2043a6, 0xa1546aa00cfb99e1, 0x59f2c704ce9b49b6, 0x52d5cf0a082ed354}},
		{X: Fp{0x269ae457eb399343, 0xf06ac7e53871f6d7, 0x4acedddfccd81bef, 0xa25173d2574c5aca}, Y: Fp{0x22f9eccc2dc1e7da, 0xb2a856473f6493b1, 0x3c2cd177713c560d, 0x6a455c01746b4a0c}},
		{X: Fp{0xe07459af150ae120, 0x5e210b89d64cfcdb, 0xe96a2e9c8eef1b13, 0x09bf1143752172ea}, Y: Fp{0xcb5939c7583c3d0e, 0x8faaab417060848a, 0x42955b378623025c, 0x53511e0e6fcf0bf2}},
		{X: Fp{0x5dd890203c7856c3, 0xbe8b06fe9cadeb80, 0x8288cf3d4c96bebf, 0x2976f84ee4a7bf7b}, Y: Fp{0xf63b40cbdb02add0, 0x0271933176266a55, 0x184fb2638072678f, 0x91c4e16c639758ae}},
		{X: Fp{0x3496641951a3ffff, 0xe8be8e0d2aacb5b8, 0xa8abfb9c5a18c53a, 0x99e4a792882f3c0c}, Y: Fp{0x90d8c5d03ec7498f, 0x6bee7942ca3f3f2d, 0x9525f74b8c4784e2, 0xab20b028bea9d58d}},
		{X: Fp{0x0ba81a3f9e676fd2, 0x7f87796e8a37e031, 0x610f6f5fc9e40f18, 0x4495fe652a0c53b1}, Y: Fp{0xb5f20d23fbb5abcd, 0x074026ed0eefde90, 0x9c277e4bfca24c19, 0x4db74c36d7be8e96}},
		{X: Fp{0xd79bc1b3b6a5a294, 0x8f39ff85378f0daa, 0x57a6c8b799b1275d, 0xb443641261348718}, Y: Fp{0xa000d0aa69d15e48, 0x322044d9cc5857b1, 0x1e6bcb9548a98357, 0x385d5dc009e90056}},
		{X: Fp{0xaa968d8f60dfe8a6, 0x31c4d0d9bf933e6f, 0x4cbef1020772afe7, 0xa0f41c3661d4c8bc}, Y: Fp{0x3120f3d9ecce488a, 0xa2bd74f3ce93bb7c, 0x717e0f70490d31d9, 0x4182798561d53855}},
		{X: Fp{0x2936e385f4f272b4, 0xb4a6ba9681b77a6f, 0xb841d62cda926679, 0xb04550e877e6d9e9}, Y: Fp{0x52126bce402a8a95, 0xdf46628270a2beb8, 0x7c71b20547931fa2, 0x55bd48e2a52d1c41}},
		{X: Fp{0xf293fab99f661940, 0x8da95298d4c387d4, 0xe1cdb32cf3f5395e, 0x4e7aee8b1975b058}, Y: Fp{0x48b3943e59c56001, 0x3b1a78a07742302c, 0x727207448bac760d, 0x544bb19f8a5c20aa}},
		{X: Fp{0x269c1cd7ca472075, 0x76682ce152bd1aac, 0x7ed6e4f23735b0be, 0x2c5ac64eeec689c2}, Y: Fp{0xf4d686560482bf9c, 0x6e1bfd6e1dd55c60, 0x9760f6c512258a63, 0x6316febacd66c405}},
		{X: Fp{0xd0f5fb72ca9985a2, 0xae0f84b02424ec11, 0xc6900712463434eb, 0xa81deb92fff6af03}, Y: Fp{0xd14fe1d9f094ea83, 0xe098bbd86efd044a, 0x4e3ac50b9371aaa8, 0x216a3b25278a4606}},
		{X: Fp{0x91b8055d2a5225e8, 0x0e0a058a4c2657bf, 0x27ceef2d4178cb5e, 0x41030534ad6bf9ec}, Y: Fp{0x2546daaa2d172de8, 0x2407a94df4acc7f0, 0xa54e49637a6883ff, 0x705ea7ab21b85344}},
		{X: Fp{0x11bb1210b16a317d, 0x8a8d30cb57db6462, 0x6c0c3dfc7534a217, 0x3b32dd8355be9050}, Y: Fp{0x4f9622034998c6a4, 0xc30a2df8e47dfee5, 0x397c7f9555fa2db9, 0x07bb53840d398648}},
		{X: Fp{0x5dba9916d402a96d, 0x9bad625c1201797d, 0x468b59087db5ee4d, 0x7fd5a8d38ef86583}, Y: Fp{0x656182f66758706b, 0x0b56c48f6d539fa7, 0x616f72c71c8ddb36, 0x342e9caabee31ff0}},
		{X: Fp{0x71cfe9470944f51a, 0xbf69f0648f4d0c5e, 0x0573d1db15d35447, 0x57bf82c98d661543}, Y: Fp{0xf62ea7ea678a0f08, 0x1bc0668ecfd52a4d, 0x6eb052ed3d93f87f, 0x8d9611f1b247543c}},
		{X: Fp{0x334135883d517138, 0xf11e857eb9951058, 0xbfe05fbcbe4d18bc, 0x0db6854edeb4b097}, Y: Fp{0x69ba11b44ea51e9f, 0x9cf2658d0a4d5850, 0xc315e8b65752ac54, 0xb077c46bee6ae505}},
		{X: Fp{0x164a88cd428a6e9a, 0xc9ae3182b8d37bc7, 0xde3fe606e20ecf52, 0x24472c34bd23713f}, Y: Fp{0xe5d4726d79816fee, 0x544ba1437b3f55cc, 0xbd1209a5e07be9ce, 0x3bb1c3678d5cf3ec}},
		{X: Fp{0x9cf912e031c932cd, 0x72cc22c58c344442, 0x8e6b059436b1bda3, 0x8f1276e4fbf1f9dc}, Y: Fp{0xfd319ce6c09af7e5, 0x014585fa71e5d142, 0x5e7f57e2c42e0b88, 0x54cf0e37f4847df0}},
		{X: Fp{0xf353520d6c4be1cc, 0xc8fd6da1ec9fd6ec, 0x60a4b1f41e1b2470, 0x5dc2cd527a60bf73}, Y: Fp{0x5421306b7b9bd27a, 0x768a9645dad1f604, 0xbcc939deb2969752, 0x493715de976d57ad}},
		{X: Fp{0xfc26fb888874802d, 0x73f387ecdf5999e7, 0x9449ea1d084a2804, 0x94aff356d08c77cf}, Y: Fp{0x272b9ced5d27e00f, 0xf7d30ae752be03fb, 0x826077d4a49c7b6d, 0x10d0cc84b3dd5b71}},
		{X: Fp{0x539fad47a901e32a, 0xc1e0ffa65991b36c, 0xe15daca08f3f7b90, 0x7c7f34b6da9f5d55}, Y: Fp{0x32704e919fa8f48d, 0xc4c451014ed2c1b4, 0xcc1d055d53fe0a96, 0x7e9ffd19cc544605}},
		{X: Fp{0x975910ec1d0282ae, 0xa416bc31276fc51e, 0x1bd78a0ac30b9f6d, 0x44019e0f9c09aa63}, Y: Fp{0xd834468f6ddf8219, 0x7029fbf452952bec, 0x216b699c1afecdc4, 0x0f7a052785892343}},
		{X: Fp{0x5577a7f92d29f888, 0x4854260ec470a4f3, 0x0900b9c91f7534e4, 0x384537fa14e0edab}, Y: Fp{0x6c6ea713e7cde276, 0x62e08a8a7972ef23, 0x1965d78657f72cb4, 0x61a7a8d7e57382f7}},
		{X: Fp{0x6bfe72354139e805, 0x4799e83a0959b9de, 0x0d65ecef1af40612, 0x68d8bf44861e84a2}, Y: Fp{0x72335d2b79f3e198, 0x0f2ac386e5e8f65d, 0x8fd998fc2a8af08a, 0x4b80a3f6bc32d15f}},
		{X: Fp{0x8ebb89000b4716ee, 0x3d98a4004d344f2c, 0x8a357fc529284d81, 0x07d07f158db99e2a}, Y: Fp{0x4289a7a61a0ea48c, 0xb3297ab446b9b4c4, 0xf97630937f046b6c, 0x523be9b747c3e36f}},
		{X: Fp{0x7b75496fa0eab093, 0x88e40ff530850560, 0xd9cd1913ee0e720f, 0x6de3e3c30a945489}, Y: Fp{0x79ffd83482e7e05a, 0xe10e31c42a42c104, 0x7fce15835015685e, 0x0970390ad0c1e7a8}},
		{X: Fp{0x3d5a76e1d3130f83, 0xc6a793722e189e4d, 0xbffa83a160735aad, 0x051e68909f169119}, Y: Fp{0x43fad13ae7dc07fa, 0xc810473a666dce4a, 0xe28b146e8a19bbdd, 0xa73bcdf2954ea8ca}},
		{X: Fp{0x87c559dc2c4d11a8, 0x4dee947ef83bd6fe, 0x663b5ab98e8c038b, 0xa50866745bb1d6cf}, Y: Fp{0x4d89e4574657cc50, 0x2b32cd453809f067, 0x0466fd1e3d49cc0e, 0xab5722dc8edc8894}},
		{X: Fp{0x6e0df7dc0898351f, 0xaa42b88f62353751, 0x0fcfa13f70fa90b7, 0x823fcfc9027c4c39}, Y: Fp{0x6c75e7c16860030e, 0x7bc7b292d73b7793, 0x2f8e5eaf7c486b20, 0xa913e1f2cb6a6e52}},
		{X: Fp{0xf130ea6930ec8367, 0x5740be3bfd8e8f9c, 0x7a5f63a972787aa9, 0xa0efe8201bd075e6}, Y: Fp{0xc9090571697cdb6d, 0x1566938353dc14e9, 0x683e151badde267a, 0x211320870fbd454c}},
		{X: Fp{0xd7e9dcb10877a270, 0x750ca3bba5f42814, 0x640d47cdd211edc5, 0x105bc1d09be504d1}, Y: Fp{0xec2a94c2e6b2a251, 0x458c04582e1defb5, 0x99743ad69cf37d8d, 0x9d11c8517f819332}},
		{X: Fp{0xce83043b0b9cbc6c, 0xd84250ee34a49c95, 0xd617b015dc8d9620, 0x3bc0c84651d87d24}, Y: Fp{0xde65c241df4403a9, 0x85e1c8c277e3dfdb, 0xd37089f6c593f690, 0x2644118b1d8b0db3}},
		{X: Fp{0x81ed411306cf68b6, 0x2c6809c6689fdb23, 0x7df4965cab65815e, 0xa2d2718b36750f70}, Y: Fp{0x5664cd518324b9df, 0x52e68da3d0740896, 0xc4595ed8a1c328af, 0x14e07222474035db}},
		{X: Fp{0xc0c5bf1bde0b4503, 0xa3fcdc726a7bba9a, 0x5f8fdfd10e6456a4, 0x3d2a1151fb43a67d}, Y: Fp{0xa85cac104ec242d3, 0xbe16d3772fb450d1, 0x5a6c9a4ed47ef2bf, 0xb51fc56cb9fe7d1c}},
		{X: Fp{0xce523ec9d7fe6956, 0x9d09c77467f45fdd, 0xb8f4d74bd853fee1, 0x0c3dd3ea5db7b342}, Y: Fp{0x1409066a482a81fc, 0xeb90875e39806baa, 0x84d0cb685ae110a4, 0x1fb3f24385a02524}},
		{X: Fp{0xd2ab37af49131e57, 0x66322b0bf4adeda5, 0xe93b40be5a77543c, 0x73a0d3bb21676dce}, Y: Fp{0x9d93cb0ea7260fcf, 0x7ef6bcb5f25cfb97, 0x788c757829c35f11, 0x7d4ce35208aefe2a}},
		{X: Fp{0xb1ae14b849a16506, 0x2686bcfd89721218, 0x7e648bd447a92050, 0x4240303a4884b33e}, Y: Fp{0x5c0e3b55108168a1, 0xcfbd192733661178, 0xbe183fe6c9b3b1ba, 0x0f5bd84a45e7be88}},
		{X: Fp{0x9a4916cad3eb2710, 0x97438f7c1b09e69d, 0x94ccb7356f28c3df, 0x4d9afe683aaf4cd3}, Y: Fp{0x08dc0e385f59062b, 0x922bdd636745d1f1, 0x4a64285c02514441, 0x0a2f53a32b9d4443}},
	},
	{ // i=28
		{X: Fp{0xb1e4098ecfab0d59, 0xbee59e5a69a7eb4e, 0xa7c25f0a3068363c, 0x0b7f4ad7ab19544a}, Y: Fp{0x799f602157c7c964, 0x8010bf209170f4a8, 0x43bd27f5319bb25d, 0x0f5cbad5870f14e6}},
		{X: Fp{0x5c46c1732f14c6aa, 0xd6d9bc8a1993d3e5, 0xf56dc23b26eebdf8, 0x7bf46872df340a8a}, Y: Fp{0x86a784f9e56cbfff, 0x3f912b500cc78138, 0xe0b122427c147e76, 0xa2c4577cab7664b7}},
		{X: Fp{0x3a5aeb601e70f304, 0x5846082ed3b335d0, 0xe30344f9c6fa277b, 0xb41d001725c442b3}, Y: Fp{0xa121b7eb2dac82be, 0x7b014fac53f2006b, 0x8f418bffceb7e0d6, 0x4c314b4dbbc9f974}},
		{X: Fp{0xfaf4818f498d7be8, 0xcd1880a14b0b27db, 0x9a104e21c78809a8, 0x8ded32a3761320ff}, Y: Fp{0xe0ed2abb353735e0, 0x3e7c0b2bf8eaece7, 0xe104a02d87b1aeda, 0x1a1b2da8ffba84f2}},
		{X: Fp{0x1b2c4b684f947866, 0xd386d75fcf5a4159, 0x20bc0f4ac575dbec, 0x434a94edf90c2d14}, Y: Fp{0xc9bcca4768807176, 0x7e611216254e6426, 0xaca2cc16cf486fc5, 0x10aa73efc2f30998}},
		{X: Fp{0x15fcca8491012333, 0x86f03ff88decc921, 0xc3a4446035203f6f, 0x1524b5d60058421d}, Y: Fp{0xe08ebfc43040b230, 0xdbceade9c46dfe82, 0x08d252ef31a3a13d, 0x966622c48495b52e}},
		{X: Fp{0x2534e68d4455359a, 0xc4030b807255df3c, 0x5aaf4119454aae11, 0xad2131a9f65d7576}, Y: Fp{0x2790fff08f7c9434, 0x3f8eef2229f19ada, 0x8c94d4fb333d7788, 0xb55e893f220620e1}},
		{X: Fp{0x67787c66ea14e150, 0xdb7b776ef53aa714, 0x49279d5b94905c7d, 0x1eaf929e37f96b6f}, Y: Fp{0xfec0cb47795474d1, 0x8f62f935fbbfef2c, 0xbf1344f9e2c9d96e, 0x7948da29c41b3d36}},
		{X: Fp{0x8ca21f5638a1cf57, 0xe4c8fd7bf852df4c, 0xed66ac36e480d3d3, 0xb31ef5ca6a60155c}, Y: Fp{0xaa789a8fb1d80ece, 0x913ceda05bcf6553, 0x61ead0ec7667fc93, 0x3516119e5294196e}},
		{X: Fp{0xf24d30498f44c9b4, 0x457c6ec561e1053b, 0xad896bbd30486f52, 0x2c438134bc1f826f}, Y: Fp{0x8a0dc854a4b21e59, 0x0be397d2ba4143e4, 0x6d344b8b4aae7d2c, 0x1cde708ae2e6aa85}},
		{X: Fp{0xc5100f6b6b5d9bda, 0x2b13a8d433aa4605, 0x92a449bea64514d1, 0x195fb65744f58ef2}, Y: Fp{0xf5c8efd01865ff0d, 0x1575617323f961db, 0x751eecb96bc74702, 0x767398ec72851e52}},
		{X: Fp{0x048db322ce66462b, 0x8e4fa7930589adce, 0x0cd78c0fcf219c51, 0x38fbc7f39445259b}, Y: Fp{0xcb07aed02c882586, 0x6285e09323f08841, 0xb2ec8b2853db8059, 0x451d997a355370d2}},
		{X: Fp{0x346eca3fb744ad15, 0x26fbbd869a927b92, 0x8a58fbabdf8deda6, 0xa26a4af073afa585}, Y: Fp{0x0840a20fa0b8a8e1, 0x5e5ca40830270999, 0xe9de76048f291173, 0x937eb3d670ae7986}},
		{X: Fp{0xf56d9a937fda52b9, 0xbf4953b498cfd1c1, 0x28e1aac73673a2e2, 0x93c004648b58ae19}, Y: Fp{0x93a40afcb60f102d, 0x918e2fa98f9e7ea5, 0x3a368f7ca1ab4988, 0x1e7efbe9362e3b2e}},
		{X: Fp{0x139955e6c5b368f7, 0xf7ea48b038f2f7c9, 0xe3e8e74eafcf6ac0, 0x766bc1de9c3f7caf}, Y: Fp{0xcb3f3e05e217f103, 0xc28aebece173343a, 0x8f4d3fbc6f5eb640, 0x25d4cf501c090bf5}},
		{X: Fp{0x37055016f3e7fd56, 0x29f7b140e1f52e9c, 0x2cec4447c6e4e1e0, 0xa66a5fda1392d019}, Y: Fp{0x6f7858283075a4e1, 0xb1934d9765ba8cce, 0x5f6639f154e4a025, 0x9bf2b9a50ffd1781}},
		{X: Fp{0x15f4557191dc1c8f, 0x6c1b5bcc29d6dc91, 0x2bd33871b50e2e16, 0x25f073dbe45569cb}, Y: Fp{0x2f8c51ac6837dd15, 0x90d1df9541254d58, 0x561bf50d00eaee34, 0x82c1119e27f63aa6}},
		{X: Fp{0x5cdd56a4e9ea513b, 0xc9ad3c29ff08988c, 0xac116d246aa31ca4, 0x755265272edc8006}, Y: Fp{0xb1981b5ec409f472, 0x60d96db2484479ea, 0x74ce19198cbf959c, 0x6064a987c1153837}},
		{X: Fp{0x75a8d493fca8ccda, 0x8964ca13caf1c40a, 0xe6ffcc274fe971df, 0x7a96479f3fcddf7f}, Y: Fp{0x851146a70614b114, 0xcce5a8e3c16c477b, 0xae7605641adee3ef, 0x0f333e4379c49c14}},
		{X: Fp{0x8b52858132558af2, 0x9a0683940ceb421c, 0x4a5ade7fd5b12886, 0x8c967b56867bd197}, Y: Fp{0xe40c2afedf2afa28, 0xdc0ab6d0dd311b2f, 0x053395ac588eb37a, 0xa14cea451eb73083}},
		{X: Fp{0x29aa4166945d96ef, 0xff7b52c8d7479c18, 0xb5e2098e33f587ce, 0x33b6c3efcf99db5d}, Y: Fp{0x33d030db713f5796, 0xa92eb72bd49e3879, 0xf896e8ee1e005736, 0x0fbf35e59fdabeca}},
		{X: Fp{0x5b407a06fea4fd07, 0x823702080fc11e88, 0x51ca36e3a9bcb940, 0x94d9f3a0f2876985}, Y: Fp{0xb130529baa67c437, 0x9345297ba5688bd5, 0xb9550278a3d25cb1, 0x666345e974131f02}},
		{X: Fp{0x63fef43ef558da37, 0x45286e99187b1cec, 0x019e97b6ef411c1e, 0xa6b767d35121ed10}, Y: Fp{0x4b97c0c3a8e2f8e4, 0x97ffe01d74482936, 0x9d8dd08af13430a6, 0x73967ae053575ded}},
		{X: Fp{0x51c5cb71088e6bc2, 0x335840e28dae7aa2, 0x0b3146947595f7e8, 0x2cc97276c3f68204}, Y: Fp{0x46b0f32762acb37e, 0xc57405fd9ce7faa0, 0x80150ee151883389, 0x5dd40b63c70cf0c5}},
		{X: Fp{0xca280c5c386f4282, 0x9c137aa5a332ae9b, 0xc56ca0b31042c584, 0x628eaad0639abe3a}, Y: Fp{0xb97ff6a1f051260f, 0x346cb57d087c3fbd, 0x099732776d69b4db, 0xab01394ed8d36971}},
		{X: Fp{0xf5356d0b87f5d66d, 0x298344db6806e823, 0xf576f4c44039da61, 0x1f4e1fe8a7b9b97a}, Y: Fp{0x985e78f471bbb85c, 0x9cb34df74e142bd9, 0x07224198af9deaf6, 0x704c6de5db71a87b}},
		{X: Fp{0xe5d405795302e2e3, 0x4ca2af9d9d05b2fc, 0xecc8bf5232a5a913, 0xb072aba75190cd82}, Y: Fp{0xae01030f4ccb80dc, 0x2cf46db5766eaa69, 0x03fb405cff3869be, 0x71fa9a01fe6a7a3b}},
		{X: Fp{0x5eba16fd89d52cb1, 0xf405313f72b8318c, 0xd9e97ede3670c7b0, 0x1d3c2e853aadb33e}, Y: Fp{0xab71bac926bc7e93, 0x209141ce1cd80225, 0x4a4402e10432073b, 0x602c4bd85ebb1f92}},
		{X: Fp{0x38a568ae8455c008, 0x0d2f13b7f854fc37, 0x128f1bfafc40eb69, 0x3e30681ec4b10e33}, Y: Fp{0x062b3a2eb82de4f8, 0xeab13b5ba2d4ced4, 0xf6bf056fd63c3c11, 0x7ffb002137b972e8}},
		{X: Fp{0x1c2fc454c724f913, 0x37e438782b506bc6, 0x61b68b9f990e69ae, 0x7d185fd1f6dd0a00}, Y: Fp{0x5f17e1edfa2b05dd, 0x8a1cce9d4816ce4d, 0x73266cc92a8ea340, 0x7340844d193e3794}},
		{X: Fp{0x2dc9bfa0f39fbaed, 0x3c1cf40d0db1b414, 0xec3ecb8e34ebba63, 0x6468cc793914d10e}, Y: Fp{0x2ed22738f7225961, 0x29928f00e137bafe, 0xb03d8baa4a39660b, 0x232b021532496866}},
		{X: Fp{0x1df54300ce00081d, 0x85d630a5a4fe071b, 0x98862e3757bd61c2, 0x6b7c1e0e89e992e0}, Y: Fp{0x56f767ad6ad48efe, 0x86e38c278cced569, 0xbf5ec62efebcd44c, 0x23066ad93c478140}},
		{X: Fp{0x26cc78d7bb9cca69, 0x6ed9e8073c7407c1, 0x384e46884e1f53bc, 0x1c4c603e94d576e4}, Y: Fp{0x964a3ee532c2fad8, 0x4c0f707a264f8ecd, 0xbf230bfc54e4a4aa, 0x9cb1270a7b4e9f79}},
		{X: Fp{0xe112f24ab62acbbc, 0x28c1cee7f7f1f556, 0x575fbd5d020f7581, 0x4cec3751b4ab6caf}, Y: Fp{0x829077d036153988, 0xa9159adc11902bed, 0xd2360e1bb4faf903, 0x7ec76a3b88c123a3}},
		{X: Fp{0x15046f5733051548, 0xa9ea55d5aab41f2f, 0x063ddc602c186e0d, 0x121d0b729290b4b8}, Y: Fp{0x5f1b2f9a05b8f1d0, 0xf476738de5d85f6c, 0x0259130db1eaece9, 0x90bb970cc1d35386}},
		{X: Fp{0xd381827d96495086, 0xec2ead6da2b2508d, 0x2238f73266dd88be, 0x2780848a1f6073fe}, Y: Fp{0x4f2b90953e23820b, 0x5205f13068eba119, 0x59872bbe821972dd, 0x3ae4422976d5ef20}},
		{X: Fp{0xfe9bca51a1cc252f, 0xd8abe41369556eb3, 0xcd8ebefdc1809e7c, 0x3342d28b025fe0b2}, Y: Fp{0x899fa6cb0036f692, 0xfacea61f3d9380e5, 0x9bf8184a4803910c, 0x14e77736cd7e4655}},
		{X: Fp{0x4e5e3b2b09dc34ad, 0xff5b58055746d20f, 0xa3cdb086da9adc66, 0x357aa978afdb36d0}, Y: Fp{0x0baffd623b6c54f5, 0x893f6cf4e265f70f, 0x233f782a765aac8f, 0x187ab98d3c1dcc44}},
		{X: Fp{0xa43a98f8f9012796, 0x0fa0daacc0a41176, 0x0a60d3eaf9c33215, 0xaf0fdd431d190573}, Y: Fp{0x6d55d55acd9844cb, 0x66485e0b45ec0534, 0xe906bd38be3bd06a, 0x73dfccc8aac83c97}},
		{X: Fp{0x0d7b6990109dbfc4, 0x81645dea5933806a, 0xc2c79090832d8da3, 0x3d06dceebfdf8292}, Y: Fp{0xfed49438709c1eb2, 0x49e49cc488e23ebc, 0xc630fae26a02f6c5, 0x5880ab97ba509097}},
		{X: Fp{0xfdb694ef17765be4, 0x87141dd89d4e0157, 0xcdecb93d352a0ed1, 0xa550ee6bc0afc55c}, Y: Fp{0xaa4693b6826d301a, 0x0a67fb7ba90f573c, 0x1503ebbeacca8c2d, 0x54f5a0f569da8ffc}},
		{X: Fp{0x97653f800d6f88fc, 0x63cebea398e3462d, 0x3deaab8324756bb2, 0x760c34c706a32d68}, Y: Fp{0x250120c06163f90d, 0x84a06b5fb04db7a1, 0xf9a053ca84ac0da8, 0x8a86c2f6748d9ca9}},
		{X: Fp{0x649e788b6f0302ec, 0x2a36136f8dc97031, 0xdd64da4529617f03, 0x246f848d6f7a8925}, Y: Fp{0x1316d0d0f9485683, 0x471f994ea338997b, 0x6bfa62943ea6ee33, 0x06671866296fc8d2}},
		{X: Fp{0x97ce56689eed3a08, 0x1a1c530da7cbaa7a, 0x73b358cee74195a4, 0x5e247ad94ce3e372}, Y: Fp{0x0e9f2ad3520560b0, 0xa659fc8e0d1ff023, 0x0fa71bc3960b9d4c, 0xa317234124694aa4}},
		{X: Fp{0x59009aba4e66c364, 0xd41c7126475b8689, 0x3a204b95b2f0d9fa, 0x049a89b029676cca}, Y: Fp{0xc15d7bd089c5d94b, 0x15ae3d22c5038513, 0x6672a5b8436305b1, 0x01c7fb0eff9f9c75}},
		{X: Fp{0xd03cb09509672ce6, 0x0747d924355bd487, 0x85e430f4780c461e, 0xac264778ccff5c78}, Y: Fp{0x579bb06ae0f68022, 0x40594352b669f057, 0xa6d78831f5177b13, 0x8c205a978f7dcc36}},
		{X: Fp{0x0b76a3eb49fef3af, 0xd16705d19935e432, 0x77fb32f8d0e1bcd7, 0x9d9052d6344dc596}, Y: Fp{0x08b463adaac10ca2, 0x667c83cdfb717884, 0x852c948a391ab814, 0xb4671f873d99a7cb}},
		{X: Fp{0x2d9bc50bfd652669, 0xd92b6a8a663e9562, 0x5840b0ec0751318f, 0x74fc4cf61babd7d0}, Y: Fp{0xc9967c8b74f39c35, 0xb8d94ec796071f13, 0x039113b8b7dd04da, 0x8a4cbb9f16dad083}},
		{X: Fp{0x383cf2613ef5560c, 0xf961fdec3358c380, 0xdb0fbadea859c003, 0x82fab41a07c30dff}, Y: Fp{0x992b9d8e197e7893, 0xad8ff276e0fcd556, 0xadc1e3e1e0cb304e, 0x887cbe9492d0805c}},
		{X: Fp{0x4558836c09a2b12e, 0x58f7b320c5290a04, 0xfa9a5c4bd70416d8, 0xa6b5c96f6ff14bcb}, Y: Fp{0x7b79585042c96fb5, 0x5b0552210e1b3581, 0xd55f5b35533f1aab, 0x20b845179d1116c4}},
		{X: Fp{0x477b283d360b2786, 0x57e511f9d3b183c9, 0x5fc4bf1e09be7370, 0x41c290ee75146b9e}, Y: Fp{0x4d736c712d2c36d1, 0x7b739b2a17d16e7d, 0x388cf086cf64f82f, 0x763c9b0349507a36}},
		{X: Fp{0x6fa0460349160309, 0xb2f2b51d2b90c678, 0x9e6b238ee2ff2078, 0x9fd017f4bf0e9d85}, Y: Fp{0xea2a576e8cbf64e0, 0x1071546eff274413, 0xbd9380dabfc5932c, 0x6b3ec44b281a71c4}},
		{X: Fp{0xd8bacb8a4a6a4bc1, 0x4011329c4ace4757, 0xd88d935d6693e66e, 0x8814701c790fcff0}, Y: Fp{0x8a49e0f1ef490c66, 0x7a4827b86171871d, 0x5bf6cbf9a8ac67a4, 0x75f326072939ee21}},
		{X: Fp{0x6910cedd3e15b0df, 0x527a5cd0daa23917, 0x02fc77990bc935bd, 0x4fd4ac1e079c8ddb}, Y: Fp{0x21f3c06c858c1600, 0xc2003063b75e6fb2, 0x39dca24bbd084677, 0x640696a2cfe8c523}},
		{X: Fp{0x0bfc831c750c9db0, 0x13240ecac238428e, 0x093936e428941d73, 0x8c483a82c8ea1f63}, Y: Fp{0x1e0fca96a0e19f7e, 0x5f589e6dad15ec93, 0x404e820ac80f3047, 0x77122e20211c37dd}},
		{X: Fp{0xa62cdb913c83a8af, 0x4d9adc30b0ab09c7, 0xb6b1ce42af1c5226, 0x678a7405eb1c46a8}, Y: Fp{0xc70060394c6039cb, 0x089f794bc2e2c537, 0x241da2211614add1, 0x7367a4b76e0269b1}},
		{X: Fp{0xd9ff8404f6d53890, 0xa0c904783bdf1d5b, 0x2e3275b35cbdba60, 0x4bff78bc79011a9a}, Y: Fp{0x5fa20b2af1ed2a5d, 0xcfaaf3f4d12087e7, 0x8d39f105581f96c4, 0x6a841956a1e7a82e}},
		{X: Fp{0xbbdc3e4e7b418915, 0xd5f4133a4932363f, 0x83921c0305684676, 0x498b594f28667e7b}, Y: Fp{0x7efdb4bdbcebc520, 0x2c6357c6b4e663f6, 0x4cac3129322edbfa, 0x0cf5b18670121e6c}},
		{X: Fp{0x79a5a738f7596c2d, 0xec7ea2e88a0f512c, 0xc1f79d4c51149228, 0xaeb39ea19bae5a75}, Y: Fp{0x3dae969454c03bfd, 0xa9654912d4caaa86, 0xf93581db64ed5e04, 0xac883cf31a9c011f}},
		{X: Fp{0xa196ea193a6e1d09, 0xce92f590d4e74ad2, 0xcf64c3aceb8525c3, 0x74fb79e47332d76f}, Y: Fp{0x17cfc9eaaa23fa55, 0x308208c02e2d2f85, 0x37d29402d2fba4fb, 0x640915bb3abcf659}},
		{X: Fp{0xd8fd99d8921e36c4, 0x5f382b61c91655d2, 0x6d00039a436655a3, 0x9d43befbb6baaf55}, Y: Fp{0xc954214514bc1cb0, 0x92f654e00fe2e70f, 0x48c38ee9fa9d51a7, 0x3e4fd0db07a72d8f}},
		{X: Fp{0xfcfe3279074d1e55, 0xa2413f3957289880, 0x155c811eda460d2b, 0x0d31b017f618259d}, Y: Fp{0xca319c0bb575a5be, 0x5ac9f0acfd42f071, 0x2ca3920251a8f7d1, 0x22ae54209e6ed564}},
		{X: Fp{0xca50fed17ec54a98, 0xb8fea0f62dc05f2e, 0x8ecd278a4f1774f5, 0x21e2706c01602edb}, Y: Fp{0x20287c1a79250aff, 0x3af477926c60d826, 0x87062c394d2882ee, 0x95959ef378a9fb29}},
		{X: Fp{0xffd75244217500da, 0xd765632e5696b92b, 0x76dd0f618d3d7284, 0x11bb5c3cadb8b6e6}, Y: Fp{0x63108ded1e6b4502, 0x34436c3448b45fe0, 0x65d9cba55c3173e9, 0x1f140b515a5af57c}},
	},
	{ // i=29
		{X: Fp{0xc8a6156baf2a7416, 0x4241fe24f2549f94, 0x5d1ad2175fa4f162, 0x3938b81bc11f4cba}, Y: Fp{0xf4b25b39b2e3e57e, 0x6b3969cba7b19488, 0x88461f660ba73a01, 0x8d41ba56d70e1022}},
		{X: Fp{0xadead22e2ad8c6b6, 0x5c11eddd592dd759, 0xdeccee65ef0ba772, 0xa589a686f49d4d95}, Y: Fp{0x9651658dd6f877d2, 0xa928029c855f06a7, 0x6bdb5d4334bad86d, 0x1aaafd3700875251}},
		{X: Fp{0x64a9f2884457d861, 0xb4d015666f39c594, 0x8837f6bb022207ea, 0x3cdfd1ae2e6a0f54}, Y: Fp{0xc1d55c0277eabf5c, 0x1c6db9542b5741e4, 0x0b082c90c2cbb03e, 0x22b61cf5122ac85b}},
		{X: Fp{0xdfa0f5601f76aaca, 0xa03c471e83ed47f7, 0x55aa395ccc95eba3, 0x1bc9e60874b536ec}, Y: Fp{0x56dacb267e318a14, 0xb359049fa4d0865f, 0xc30f0e746338e1c9, 0x75ee39d1b6a1a53e}},
		{X: Fp{0x891224ae153d8a1a, 0x75769cc672ad3209, 0xd837afd1415f8658, 0x6b46910054d2ee8e}, Y: Fp{0x1dde6d48ab2c5193, 0x9da8e65dd63fa7ee, 0xa6fbb965663939bb, 0x787d78255786f4a8}},
		{X: Fp{0x2c99c24ff583ac02, 0x3e664dfb2961dce0, 0x40703b72bbf9d1b0, 0x9b795f2ec7f6a928}, Y: Fp{0x7781213a8867521f, 0xaabb397f1a3b5caa, 0x0913757f8441bc84, 0x58ffb162a38dd187}},
		{X: Fp{0x2a3f5fa59784be6d, 0xa0007cea8a92f299, 0x640e2d45aa06d293, 0x4b3f369a8905787a}, Y: Fp{0xbee3b105eb54191b, 0xc66b460d0a259b20, 0x863e54b88af6740d, 0x6b89efe8981ee430}},
		{X: Fp{0x331792e27266dd45, 0x242d0ea05620a5da, 0x19dbb07e9c1bcd19, 0xa3261cd72b2cf029}, Y: Fp{0xc480d398cbaa0992, 0xfaf94611082472f1, 0xddf78482b526202e, 0x8a511e5ffa73baf6}},
		{X: Fp{0x7968861f7229f5ff, 0xba2606c4edaf5a3b, 0x6ad849184b7d3c6b, 0x9c411fa8c5cfe735}, Y: Fp{0x8a42d4550be8e0db, 0xed15bbf62a3fc6da, 0x23964a36176f8ba4, 0x9ee0023ce0371d77}},
		{X: Fp{0x6d4d4268316111a6, 0xb4dc45ef3fc1f994, 0x95d16910dca01de3, 0x242fd69cf11481bd}, Y: Fp{0x55c4f353c300827b, 0xc5d10f5e58369bcb, 0x73fb084642464343, 0x23fb1bb553dd6bb5}},
		{X: Fp{0x97348aae9c97e606, 0x6e0f7bba54ec5c3e, 0x7352773ff655ce84, 0x9a3ab17fbb35930d}, Y: Fp{0x3416c8885d0d0c36, 0x05411085e8210ced, 0xddb1c004eb61e7d6, 0x7df9eed4517e0b15}},
		{X: Fp{0x4959954ba5c2c4c8, 0xa9ff52feeab05250, 0x5dc4cde1be5e731e, 0x5d96e199c30c7436}, Y: Fp{0xca4f0bd4b0d1941f, 0xeb3e403c016f7ddf, 0x8c17d0ec3df28cb4, 0x4b59b0bad455ba5a}},
		{X: Fp{0x1cbd56b61d21d4aa, 0x4fb6ef900ca2196c, 0x76630076a5da51d5, 0xb0342ea3ed5711ec}, Y: Fp{0x05a308cc9d8a0a4d, 0x7edc8d1085de896b, 0x67184213251f659b, 0x0ef2a0a6a8e9e18a}},
		{X: Fp{0xab4f5d5ba4d82514, 0x68b8b3bc1fc0c6d2, 0x6f548907f6a4633e, 0x419f2ce66e3b64db}, Y: Fp{0x10655e6742035861, 0x20fba95dac7a9366, 0xe83543a7b071d36f, 0x5faed81623e77b46}},
		{X: Fp{0xd220312bef616d5d, 0x7d7b53016bcb82ed, 0x5d5749e80f0f26b5, 0xa39917e9505ae3a1}, Y: Fp{0xb59d762ae6b576d8, 0x5cbbdf7e0f248238, 0xbf4f1d9986e7913e, 0x1dbb2e436f5a4ee0}},
		{X: Fp{0xeb2dfaaab5afc6ac, 0x79d61422327d2968, 0x06fd76c759dab503, 0x56b9951e8ae46dce}, Y: Fp{0x80f17ed9c2c7f660, 0x386c38bb55c0e957, 0xb13c3e715b27d369, 0x626ac06ed32cefb1}},
		{X: Fp{0x74d6f5312e166c53, 0xa20f1a3ced442b16, 0x8a9007eff13cbae2, 0x0a05fc700766fb96}, Y: Fp{0xcb7325873939e8d9, 0xe62c4ba95a7eca14, 0xcf34555a5a2a6fc1, 0x08cb7879e476fa80}},
		{X: Fp{0xd768f83c813c226e, 0x10f1a04f4c1a11ea, 0xb8c3c5d6318cb295, 0x31f12292bae4e7b4}, Y: Fp{0x53b9654467e085bc, 0x62466c7434af7a70, 0x4e7befd2bbc5e446, 0xa5ad9e220987577e}},
		{X: Fp{0x0b846d7b8b4c1ea3, 0x83ff859eda68c550, 0x4acff58bb6e07956, 0xa9f375639fa454ef}, Y: Fp{0xeae21edc808bcc15, 0xe54eda8b1b527bea, 0x6fce29f18aff2c72, 0x14645e844c958162}},
		{X: Fp{0x9c5e03ec011d7ec1, 0x4d69f37de7894ebb, 0xe5e66b3c096cb4de, 0x2d16093044b0b538}, Y: Fp{0x9dc6967d6687bbda, 0x635dcbce90040176, 0x09ffa137274b8a5a, 0x247a0f15dda90f81}},
		{X: Fp{0xff3495585a9a2a0a, 0xdeecbad4753dffd2, 0xf722bbe28b51abce, 0x5987c771d851998a}, Y: Fp{0x5d5c1eead3ec777c, 0xc76c8eedf81dfc8a, 0xf9865f8734a39d08, 0x6b1c8831ec9481fa}},
		{X: Fp{0xcecffb8fc2999b4c, 0x22a88db34597e1cd, 0xd37f1e95e57a5478, 0x098dcdb7259d9473}, Y: Fp{0x9681f06910378aa3, 0xd645b75764753679, 0x5b134c4e6295289e, 0x5dd09b0e8ffdb557}},
		{X: Fp{0x49bed8a030f20b68, 0x32c1e434b85824e7, 0xa363ac18781808a9, 0x870d73ed9df7de99}, Y: Fp{0x9ce32b16afe8cad2, 0xaf62dc522f31d18a, 0x71346d00b368ebb1, 0x0ca4dfd39dc4664f}},
		{X: Fp{0xdd25b987835bda41, 0x0457597b2e7c03fd, 0x01445a0c4def5727, 0x42240853e9a48590}, Y: Fp{0xea4f86d2a9dcefef, 0x8f293c5af5664e96, 0xc1b29a4fde245e58, 0x3f50f401381edee4}},
		{X: Fp{0xaeb7e48807f4e5f2, 0x92c59c302be4e66d, 0xd17fd2cc558b5023, 0x479c1d10699f4714}, Y: Fp{0xa502e21bdff0898b, 0x26a7ef4451b9fd15, 0x5ffc3cfc5a060876, 0x97a60faa5bf73dfb}},
		{X: Fp{0x3d80e81e9a3dc133, 0x5233c6d0eb5da933, 0x159dcd5618ec954d, 0x0d12f1d89e3b65eb}, Y: Fp{0x71ab8e7b9fd3f964, 0xc2769de704e7f03a, 0x4ccc895d9cf1403d, 0x0dd2c8b07f9c4d2f}},
		{X: Fp{0x18e00a901211a434, 0x650cd8f906ffc18d, 0xe87898213235a77b, 0x1fde59846e50e171}, Y: Fp{0xa7e44c0d213bd628, 0x324ac76de0fff5ec, 0x15222d1f666be62a, 0x4ffdad5281909a7a}},
		{X: Fp{0x25486e9166a6c8bb, 0xa6d60c45b1091beb, 0x5e5eb5a89d6b2269, 0x22b6c42031dacce6}, Y: Fp{0xef9f334e7a7e44e2, 0x436ddc5bca2b8aab, 0x63fc76f28c74e557, 0x10aed90c571f2ad3}},
		{X: Fp{0xd4a4124ef75ddc1a, 0xb394deed98845522, 0x831e5b2e3024887c, 0x9c5ed77c87585e61}, Y: Fp{0xcc88ac808c6bf4e2, 0x4fd9547c4d13b9d0, 0x1c678b56e00892e5, 0x454fbc5bab426be7}},
		{X: Fp{0x408ea6e8574d36f0, 0xedeb5bb27c984dce, 0x1bc31501e401eff5, 0x2cb8c5b697f93151}, Y: Fp{0xa785eb708caaedf7, 0xfd42b84cce356292, 0xcde36104465dca23, 0x5cf746e415222ce4}},
		{X: Fp{0x8dfb6bfb046599a5, 0x32b1ac811b701a7a, 0x1189c602136cb4d1, 0xae34041b83cdb675}, Y: Fp{0xea5188abbf9b9929, 0x34337007ba95e901, 0x52bbfa0b2b61048d, 0xb3eafc90d904fade}},
		{X: Fp{0x94ff3ea188042a4a, 0xa26ae5585905c022, 0x4b6ae4a752e35461, 0x520e33cd72020c33}, Y: Fp{0x7d01146621f272d0, 0xfac73e33c5411500, 0x226b7ff81fdea7ad, 0x06450258b90f9085}},
		{X: Fp{0xa033929d0a9a6a72, 0xc210f6eca64ca6e4, 0xff09716802a5fd5f, 0x18f40c5a8d06be24}, Y: Fp{0x52664a8318217d06, 0x285c7cf29fbcfa92, 0xfd8a55a75276fde9, 0x14091e48b8a665d6}},
		{X: Fp{0x869d2d44931258c1, 0xc23ed82982f04737, 0xba8d2490342b25f1, 0x7b5bbf3332585629}, Y: Fp{0x281a6f2a66a1b8e9, 0x7febdfc3b9ffdbb2, 0x2d95b80f5b92ca48, 0x64deb64c25079236}},
		{X: Fp{0x273541cf79d9c00c, 0xb07d83fbf9b58f86, 0xddb8d6a07f1ace48, 0x5f56e5b5ca204623}, Y: Fp{0x3419aaf065be6d1e, 0x665b460c353b2092, 0x9673eb9ba185d5bb, 0x1aec21463b74448a}},
		{X: Fp{0x05e9aa796ebe01e1, 0x1b03ff176acf1264, 0xa8f9f49a8e39a9e1, 0x21eff6553ccf72bc}, Y: Fp{0x5aede8576d42b851, 0xa5440190fa018483, 0x62f7972a7ea6e45f, 0x6e5bb07df0697112}},
		{X: Fp{0x999148ef014d5f29, 0x1fc385fd2702311b, 0xddcac6270791cee7, 0xa131aed387962b75}, Y: Fp{0xb9777071aea2e0b6, 0xaf10cb9546b935f6, 0xae3b9856fee317b4, 0x47ef03c46eac94f8}},
		{X: Fp{0x55d502fc3a6fc06a, 0x39b59bb3c4771315, 0x2168b5d9a0d63623, 0x1c952459995735fe}, Y: Fp{0x41dfb70bbdfa5b06, 0x913d91eafce50e4d, 0x235b03c1d0f94fda, 0x38fdbe691d6fb7a5}},
		{X: Fp{0x0bbc353b54fadd45, 0x40f2925d0933d5cd, 0x55505c8b65eb5e72, 0x79419668d1423bc3}, Y: Fp{0x90ac3b5d23412b59, 0xa72bce790e9f6a28, 0x8148e654557dbcf8, 0x0c5a6be7ac5f42d7}},
		{X: Fp{0x9fed51f31afadee4, 0x62d787b7ddd41cb7, 0xc0f2e1c5f86cbff9, 0x6df154eb42ca88f9}, Y: Fp{0x0c2ee591e0a8ef8b, 0xd33275cfbd809198, 0x76b406364d986e13, 0x42415327669c8f42}},
		{X: Fp{0x0fb5fc2365a7b898, 0xd4d8484af70c7039, 0x31aaa8c5269b7571, 0x1d0e56b0c0be5808}, Y: Fp{0xe03113db0cda6271, 0xedd4564f395aa629, 0x9c4724390dc9daf3, 0x8fd38134b3b9f97a}},
		{X: Fp{0xbc818944ae32bd23, 0x7d4946e8cc8105ad, 0x6c8001ddaca126cc, 0x7f27ff381690e52d}, Y: Fp{0xf398488b41149885, 0x3afa1c4c02482807, 0xc21e11c53e32ed24, 0x54cb796a3bb52672}},
		{X: Fp{0x71f1ffdb7e85f4f5, 0xef68ba95f9e9f461, 0x0d80ed80362ea935, 0x4188aa764ad15c60}, Y: Fp{0xcd91d2d86db2b141, 0xd3703a28acce52c2, 0xd1bf68734c43fdfd, 0x82921c7b122351d1}},
		{X: Fp{0x8a7abd4b4b347adf, 0x7d3e606da171bc12, 0x067d961b995e0b95, 0x719e45d0811d3a8a}, Y: Fp{0xb601642f31389360, 0x000646351375b140, 0x81232fadb832ecad, 0xaf59c89e931089f1}},
		{X: Fp{0x1c3a06a95140eb03, 0xe39c4c8f4e60e252, 0x76175d4888114ae8, 0x3157b86c7ad7bc93}, Y: Fp{0x5f69f1b6bbb59097, 0x665c4c0e8780acf3, 0xd113162331699e16, 0x2885d5358f2689d5}},
		{X: Fp{0xfa1edb12144c7e31, 0xe0a4667bba46513c, 0xfb792e372132ff11, 0x8166cd31dd8d7621}, Y: Fp{0xc89ae4d48f05cdda, 0xaa0d36f1db6a68c0, 0xa8e3552ec522b04e, 0xaf3be39d71645fba}},
		{X: Fp{0x030889a97b96869b, 0x190afc7932213946, 0xd04521c8f5d7a888, 0x077a58446da6fb32}, Y: Fp{0xbebcb1c3b9a042b9, 0xdd7d1f33ec685123, 0x91775f1b42305e21, 0x5623b482761b85c9}},
		{X: Fp{0xc52ffe75691334b9, 0x7975d31b5de7883a, 0xa9f0bb86f1e057d4, 0xadefb452efa3098d}, Y: Fp{0xedd88f93077a4d6a, 0xd739b42b6bcf8c73, 0xb7aaad7547ccab0f, 0xa68c6588c0bef31e}},
		{X: Fp{0x64dfbf863d9c7a59, 0xc1c635b34061638b, 0x61a686ffe3605498, 0x0451b881616c8231}, Y: Fp{0x8362a94556da66fa, 0x6b822dc21338abc3, 0x3b18627372de1a82, 0x3e0e1aca38fb5a3e}},
		{X: Fp{0xb10bd7be3bc53956, 0x40886778b73f52aa, 0xbc0d6996b78de21a, 0x6904ea0ae814b652}, Y: Fp{0xc8bd38c64913bee8, 0x098b3979a447a2f2, 0x6505c7a4e76a6c25, 0x310434f5b5665802}},
		{X: Fp{0x419186e9d4457c2a, 0x99c0df65d20def43, 0x575b88faaf5642ae, 0x18435ae577c148ff}, Y: Fp{0x672e7e6f0bcfd5d3, 0x52ba126ae48f7463, 0xe7165f3285ce6d0d, 0x6b2f3342a37bbe24}},
		{X: Fp{0x0a082162b611f7a6, 0x329db30b77216263, 0x0f0164e9b9106d85, 0x117bcbc2ad929b51}, Y: Fp{0x6d769ecc3555a416, 0x7e502c834cb4a25c, 0xeb2d306f550380da, 0x31ddd40cf04349c7}},
		{X: Fp{0x445da7f0dba7db90, 0xccce298aa4d8ce8c, 0x92605500092dbd2c, 0x7eb42545f253ebf9}, Y: Fp{0x5ec1f8362fbbca62, 0x6940af4854176336, 0xdccd83bcacb0104c, 0xa1e95315e0fbafc4}},
		{X: Fp{0xf6a72185c18fb95f, 0xd8959559b867b29d, 0x8765f37b48b8b3f2, 0x98f102e4f205a7a5}, Y: Fp{0x4569a9b0dda1d4be, 0xc763d660d1e5996b, 0xb765af3ceb0b5bf6, 0xa34649dc23d2448a}},
		{X: Fp{0x888ce6d2a97eae48, 0x6bc1ea0bc2a7526c, 0xbd8d449700528045, 0x67f2b46b418fcc2e}, Y: Fp{0x9ea1dc4c67500411, 0x1aae0045eeb491dd, 0x2eaddf62e222bb85, 0x2d10bcbe3ac3ec5b}},
		{X: Fp{0x898187123420daaf, 0xaf33033d5ad5b9d4, 0x0796d949d69f1310, 0x9e5f7edf32f1347e}, Y: Fp{0x9e8bbb955b52f1a2, 0x879d9742a9a08950, 0x5e9ac48675cf8e7e, 0x2d6b98a78c327a0f}},
		{X: Fp{0xb7a81354e8215f8e, 0x7a62d827f0efa0a7, 0x5e300cd233b341af, 0x35f58f7eb064343c}, Y: Fp{0x99919b2f95942b14, 0x4d8cb2c23aa98426, 0x3e8ec7f5acadaf7e, 0x29d5a56ede5fa41b}},
		{X: Fp{0x8ebd80de23a2781d, 0x2bacef9c871d287e, 0x474edf1e5e336148, 0x358ac16e52361a5e}, Y: Fp{0x7ba99ec879904b2c, 0xf3dc49be672678a0, 0x4101a4f5252bed65, 0x4cf25b4a78821dd0}},
		{X: Fp{0x0eab41d60c7e08b3, 0x1df0120f590c47dc, 0xc4f3b1031198e17b, 0x9f5a76ab267f20b7}, Y: Fp{0x24484e6c548ccf7b, 0x66b8ca495ea003c5, 0xd0e9d7fa2037612e, 0x34b0af095c8ba867}},
		{X: Fp{0x35d1824fe39d5458, 0x96f8a2be8eb0479e, 0x891258b9b4a07e81, 0x3fa5aeb4849d1a2b}, Y: Fp{0x686f2ff8f9f9f2c0, 0x9f94ebaf4c3ce6ec, 0x81ed38a34a77010a, 0x2debf8e3a9a8c28d}},
		{X: Fp{0x3ce1478a1dfc7c2c, 0xb165de9f2923727e, 0x13acc3e3d40319fc, 0x6c9931f248d6185c}, Y: Fp{0xa3ea0a911b8f8d12, 0x2056dc95daa92f70, 0xc2b656f51de84658, 0x8156b565e9c3a08b}},
		{X: Fp{0x95d796ab4d7d29d5, 0x0af5dc73ce8f2a2c, 0xb02cb6c74585aae1, 0x59fef3be9027cbe7}, Y: Fp{0x4d937d599e04280b, 0x2e0b9c29a1356b45, 0xbae53b118ca1010a, 0xb07f826b21324278}},
		{X: Fp{0x292c00fe3f66e506, 0x8ac65dae531e31aa, 0xc5eaba5701ac7fd7, 0x3956aa0702d6ed6c}, Y: Fp{0x725de489f22159bc, 0xade5f3326203c8a0, 0xe8b92a3d68efdda7, 0x19ba21e3e4934ad7}},
		{X: Fp{0x7f297c504989f260, 0x9a1b30b2b06e2f9b, 0x6329cc9b071f1712, 0x31fe41e2381dad9c}, Y: Fp{0x412da582da078132, 0x50e582a0e60b8e42, 0x6eece8bef9f48c19, 0x567ff440fc943244}},
	},
	{ // i=30
		{X: Fp{0x5b24631506246f87, 0x8ccd7e01d7210d7a, 0x3fd8b80220ddc3fd, 0x893a0482b50cce6b}, Y: Fp{0x24a2cd04ca7f1f10, 0x56fa146291610d87, 0x29bd7caa8889ac3b, 0x88941084a8627e8e}},
		{X: Fp{0x37fa6ad6c6192493, 0x576b5757e841fa31, 0x1639edd96e244e53, 0x988401e3dd6479d2}, Y: Fp{0x5ce22d0661060391, 0xe2e313bb33447ae2, 0xe1e9b1ecc903e21e, 0x1c4d1599336f5706}},
		{X: Fp{0x750f702649788481, 0x4f5e9576ab682751, 0xebb20758d7383491, 0x6bf299cdc8c4f93a}, Y: Fp{0x10e52e6797f6ae55, 0x42f6081a94dcac0e, 0x10c27e75a5b8eda8, 0x4c26d9a10ee27649}},
		{X: Fp{0x3fa24f98e118aa2e, 0xa0095289a636e083, 0x86612ac6478dbb4e, 0x1550736cfa077b27}, Y: Fp{0x5c4706c7a9dda8bb, 0x1718a4ea77cba4bb, 0x6a856f3bcd1e35f5, 0x5d76229c6c207b11}},
		{X: Fp{0x88002dba177bd2f8, 0x655a2331b90f919d, 0xb6753d27c0e42fc5, 0x8664acaf968b63e9}, Y: Fp{0x4cee4f4d68f73180, 0xa79074520fcce30a, 0x480984e053f34ad9, 0x5c774da3eff1f415}},
		{X: Fp{0xda6bf6ab6ec29922, 0x12388a7d3664c727, 0x7aea706a7353f7bb, 0x1b80e483316c8cf3}, Y: Fp{0x3d1289dcb11f4fc2, 0x74e075535cbebcc1, 0x6ab70d4fc2f7f379, 0x0553657442be78d3}},
		{X: Fp{0x2afca32f293dd528, 0x21c9c8b771998de0, 0xe7b840e89d286637, 0x7c471bad3d41496c}, Y: Fp{0x4bb0b3087e955f4d, 0xf296eab326b8a782, 0x5ffb4e8652caf78b, 0x13ed020d212d09bc}},
		{X: Fp{0xc33593f539215b22, 0x135ab6a4c533e815, 0x69b778609369067e, 0x061a9e4604a23f1c}, Y: Fp{0x8f8f276fcfda8560, 0xb5d8a4770b412a83, 0xaa10f76e730b1306, 0xa3f362d3ebce5180}},
		{X: Fp{0xeeb9829a29c850cc, 0xdac4c755739ef978, 0xd858a41e4b347322, 0x844ebd46a23f1411}, Y: Fp{0x402e77add641688c, 0xf6b86f7b74bbb7b9, 0x65d50eb65de5eec8, 0x03774c7836447c21}},
		{X: Fp{0xd615beadd474b27b, 0x7b312026f989b519, 0xe39c1009d898298c, 0x33d47e2f9c5ba959}, Y: Fp{0x119005f7908a1114, 0xc663558220842ef5, 0x4d15f57e9627c65e, 0x4b4bbd12d97867b7}},
		{X: Fp{0x40582238b2d00995, 0x91ca26d3b8905452, 0x1d47a82c539ce74b, 0x94e57778cb7c90df}, Y: Fp{0x37b5ff087784ccee, 0x293a56c7e68791b0, 0xb42f0b3ff6e89a59, 0x273e5d86a99ad140}},
		{X: Fp{0xcef7771816ddd9bd, 0x62e656859a250192, 0xf5d285169a71fb6f, 0x56bd5571ed77a589}, Y: Fp{0x6b6b9a18c11e83d6, 0xa9fd156565e3a460, 0xc98b2f1023c56a0a, 0x43ae3e153b0dc805}},
		{X: Fp{0xec879e9fbc24e143, 0x9380f74f0dfc964a, 0x700c016c001bca50, 0x274aaf94a68a7d73}, Y: Fp{0x8ccb1f7a80c82aa6, 0x8af355e920b26106, 0xa5923ccd4f6bbb62, 0x258780e5feeb9b08}},
		{X: Fp{0x914c3329a6196f14, 0xc1606fd1febdccfc, 0xd0e62a870ce54e96, 0x1160eeaf3279ce84}, Y: Fp{0x091425cb85e0ce44, 0xa7e17db990ae2d9d, 0x85c28405e37bb896, 0x53cd754f60fa5b2e}},
		{X: Fp{0xf3ba2ddc774aca6f, 0x0060affafc9cb3ae, 0x203f629361c71988, 0x2924a08c62f809a7}, Y: Fp{0x8ae9602b2be080c6, 0xa5e88b0b5a6256a4, 0xe826053564e4e30a, 0x72758674a432eacc}},
		{X: Fp{0x71e470b981266f33, 0x10c4a13c28205026, 0x4e89be1db6734bb5, 0x26b37064d93363bf}, Y: Fp{0x283b43727dabba06, 0xc4637794c65a34a6, 0xb52c2130e1b5fc8c, 0x5540bd4c94a9367e}},
		{X: Fp{0xa29e570e4f0ba9b9, 0x867f35785006076e, 0xe17213dd3c5cb163, 0x85cee7218b935087}, Y: Fp{0x31ef7dd43db0226b, 0x67ba80ccf4a594c7, 0x06da6e9552a24671, 0x1da841efe86df885}},
		{X: Fp{0xa98351abc3b1a348, 0xb988a35447d1f3c7, 0xe9c2b132083f1499, 0x8b9b2e0dcaf79ad4}, Y: Fp{0x792461baa9cf64b4, 0x7e418afbba8330f8, 0x06d67265c6931bf8, 0x9dc12c7fe7c80790}},
		{X: Fp{0x36d315bc54f35410, 0x7581e93cad35fd93, 0x497e70fb7be26887, 0x8eae3ab5c171fa10}, Y: Fp{0x7995f1fce076fb0a, 0x2063c318c32d9e58, 0x3e636415ae5998a8, 0x1af96d78e40762b0}},
		{X: Fp{0x9175deafea3dcde1, 0xe2a88fa0d335982a, 0x30d1d88e03da5c15, 0x647fcd253d3519af}, Y: Fp{0xadec8af37561d982, 0xdcc504ec58088b04, 0xba9756b93f667320, 0x5950a803ac629c61}},
		{X: Fp{0xb43503aee9dd9dc2, 0x39ebe1e3e14107d3, 0x28991b7d78f58a72, 0x14a1c3a2358eded2}, Y: Fp{0xd4db81ce63cd10dc, 0x22682cd6121c158d, 0x46d223867d574bcb, 0xb28757a7bfa3c9b8}},
		{X: Fp{0xf6c8d7a9dda4052c, 0x4f713cc55ccf16c6, 0xb00694b98eb2bef2, 0x291d23b116a87a68}, Y: Fp{0x4bb44d7b827d6a56, 0x8b79997cb97d09c6, 0xf0f54e29e16a8307, 0x508290d975888d0f}},
		{X: Fp{0xc15331bb8d3aa9c1, 0x08499a1f146d5177, 0x5183358a63466e8e, 0xa9d72fdf234d854d}, Y: Fp{0xd1f5dcacd7b27d35, 0x3698215bd482a3d5, 0x27938ca339836e9c, 0x4fba2a0d9790cae0}},
		{X: Fp{0x7ea06cf9cf672bea, 0xc32fad2d5d4516cd, 0x6143a4712cdb0f67, 0x69a6f55270d16388}, Y: Fp{0x8bb2e4c432fdcce5, 0x1e8f51a4fc5e1e70, 0x5e85075fbb9a2f81, 0xb12f4dbf967dc139}},
		{X: Fp{0xa7e41585104e9305, 0xd2a3baf95f70e768, 0x3b25c16048108445, 0x9f0801e7ac6d0d89}, Y: Fp{0x752861b9341a2a39, 0xf3ff054fba5b774f, 0xb5cb345ff511cf74, 0x5e1f5a9b371b3301}},
		{X: Fp{0xf249b27b3cd7f01c, 0x9dbf48bb2ea1f9bd, 0x0910032cd9a89dc4, 0x792824c128ab24cc}, Y: Fp{0xb491acd43d05e371, 0x52a7d433ec6f6b19, 0xcb07b99462f8eb5f, 0x7a85c79ddeada425}},
		{X: Fp{0x0e7169d05f8d9793, 0x3851e14468a93ca6, 0x2cfa70f26d99f2f8, 0xad709e6f9e841b8a}, Y: Fp{0xd281f5d898fe31be, 0x3d4c989f1207d908, 0x03512bbfa4334c66, 0x80969d0ecf1f51eb}},
		{X: Fp{0x2e2f857678cab55a, 0x6d7339bd2f5fe02a, 0xbb9710f5732dba63, 0x3ad4eb0ddaa15ed1}, Y: Fp{0x5d9e915c2973352a, 0x647fbd786d128a83, 0x150df55949460af0, 0x3b223420571343e9}},
		{X: Fp{0x263e59550e626727, 0x14010bf2e42e0e89, 0xd515573e85a9ac25, 0x728021a2f5607c63}, Y: Fp{0xb225bc69ce05c7fa, 0x70398b50c4098894, 0xaeed6edbd7dd91fe, 0x5c4b8820b5621720}},
		{X: Fp{0x260375b7f648ca32, 0x3177206fd3c6f03d, 0x108228d1ebec1aa8, 0x2b337dad960b4ddf}, Y: Fp{0x94192c3e581adee2, 0xa22d3113f2c6801c, 0x0874ee2270f7969c, 0x7cb1daa4c7bdc9a0}},
		{X: Fp{0x3207889ed7992bb2, 0x8b756e841f5ac827, 0x99a02a330b0376d6, 0x1318affaf73bc643}, Y: Fp{0x441719c667d61a65, 0x2b8f98269228924b, 0xc28d6b8851f7191c, 0x5efb9451eb2d0456}},
		{X: Fp{0xf47693ed0159badd, 0x043ea93cae36bfa5, 0xbae97094f8e05d66, 0x5fa4ba74f1cf12e0}, Y: Fp{0x2fde45f1e1af6105, 0x29eed16f195f6173, 0x7498f28ffa2bec5f, 0x0885750419f56001}},
		{X: Fp{0x47041ee7d3832b92, 0xbeafe548d258c82b, 0xbf84222f886eda95, 0xae4fd529fe82a774}, Y: Fp{0xa657336f8dacf891, 0xc8358d3654ee84a0, 0x2713344c9d195763, 0xabb206bac148b7d7}},
		{X: Fp{0xf91ee70a9b608778, 0xa0ac4a1e9ee74a61, 0x481fdfde6860b725, 0x3aba1e94f24f753b}, Y: Fp{0xa3e93539e653ef71, 0x686d6c5761d8bd0e, 0x2e0a6541cc75cf91, 0x4844fedbcdbd7296}},
		{X: Fp{0xa8061874af443435, 0xa1e37798e1f91a08, 0x5ced17e2cd5f7ee4, 0x0d23d1c4fcccff38}, Y: Fp{0x82fdac2bd911567e, 0x2d971dc6b48585d6, 0x8d13841e7630191b, 0x96fe75168631a991}},
		{X: Fp{0x24c257b5716acbd6, 0x3dda30658cb62b35, 0xfaf07f111d26275e, 0x19ef8eaf2b9cfd1c}, Y: Fp{0xe8c6b39c9d03bd70, 0x1bc83e0422a1b5aa, 0xbc0c5cbd4bf386c5, 0x8b425be6b2427e54}},
		{X: Fp{0xd39b067df558d1b9, 0xb60095fb94059552, 0xab995ff7f48b33fe, 0x569048793521baf5}, Y: Fp{0xc24c3004729f63d8, 0x0c8878c120e47622, 0xda65a30d68b476e6, 0x5dec5d75b3b3a877}},
		{X: Fp{0x1d0b3b2b127434f2, 0x7dbb767ebfb1ae40, 0x30bd87a8788ffcea, 0x80a2abf146e7d018}, Y: Fp{0x2eaf95a8c0ea1b1d, 0xb46a09d7675c29cf, 0xb702afd2c72e60a8, 0xb5a8645bc8968162}},
		{X: Fp{0x9dab0a48913c893c, 0xdbb295808c8b370b, 0x48e682f1bf431f85, 0x22e3e30010b1496b}, Y: Fp{0xa2a0df921973bc63, 0x7ba36ab404d09b67, 0xdc58a03d48682bf7, 0xa63d32b917987c0e}},
		{X: Fp{0xff8dafba613ac178, 0xadd3cdc70fade7cd, 0x0917e8cadf24db2e, 0x5c60fc10211a225d}, Y: Fp{0xcbee680c4c32542b, 0x6569d9707521ca4c, 0xfce0df02342ca461, 0xb43e91350110c781}},
		{X: Fp{0x819ddd1f0b666310, 0xacd59da79db46362, 0x7028d80ea429b7b0, 0x0063be38bd9e188d}, Y: Fp{0xc22ea08a8866a32b, 0x6c5232cbb0191b07, 0xaaceb7c5b3f04db1, 0x900dc5690601ebb2}},
		{X: Fp{0x53642e715507dd54, 0x212257daffc9097e, 0xafeb4f915238ab32, 0x75298918f08f0a21}, Y: Fp{0x8a915c0c4b20a113, 0xd9cba73390515e5c, 0x375ef4d2d8d75919, 0x0a706b57652383f6}},
		{X: Fp{0x3a5eff259c42cfe4, 0x0c2b4014bbddd60d, 0xf7c24e5105dd6bb7, 0x59096bf08ac96b98}, Y: Fp{0x868b51ec91a988f7, 0xf4d8317b6924c12d, 0x5fb2a4cc85365634, 0x60dba7ee9b2988f6}},
		{X: Fp{0xd0f4836ede08a90b, 0xced1a94d009d1bf5, 0xbe96479713895a32, 0x140d92684f1a84a6}, Y: Fp{0xd245a86f40640f8b, 0x5be76eaa899f5626, 0x86487acc66ff4737, 0x761d4904f9e0acbd}},
		{X: Fp{0xd8bd33c94d3f6743, 0x67428c23af0ab552, 0x5b77aa40733fa478, 0x04cadf4f8bab5344}, Y: Fp{0x84c69e83422408e4, 0xb4c0f43b5b3a9310, 0x2348a547b02c66bd, 0x39c49a872dbeb18b}},
		{X: Fp{0xc0ff86768afdfb3c, 0x7cf21a540fa731ee, 0x75348f22792eca01, 0x1a6c0aa41925024b}, Y: Fp{0x667aa0950ad371ee, 0xa7dbbac7d9035ea2, 0xd462bfb78b097b0b, 0x86c29d6109076268}},
		{X: Fp{0xc66b9d4459b8a34c, 0xb09e4bbabfde6ca2, 0xdecbaa2587969622, 0x08804b208ca1ec10}, Y: Fp{0xbcb28fbe8bf3d362, 0x04d5b41271395cc9, 0x68a1038ac8e81c7b, 0x088c9b83d5117fc9}},
		{X: Fp{0xec6347727ac5625b, 0x24c8c90baff8f748, 0x0656d1243377ff35, 0x6a2c1bd9a8495190}, Y: Fp{0xa817aab965b47f1f, 0x105da56e75a57f69, 0x3b6820c31ca47c39, 0x6af8f076dfadb86a}},
		{X: Fp{0x174648d50fb2d0e3, 0xe16ae61e6c0e3da3, 0x3129d113158b7108, 0x9d1b3d26b6ec0efe}, Y: Fp{0x5992713e856a1ff8, 0x31e8f9997708747f, 0xc0c5a4553b7c4819, 0x62ffa3fa5ea8076a}},
		{X: Fp{0x809c332becb9ec2f, 0x8699f985dda61edb, 0x523fd4edbb37be29, 0x1f9acca5be4b6f0b}, Y: Fp{0xeb54013bf29796b5, 0x24a7f0153acda2a5, 0x33bfee15b0fc4a31, 0x9de5d5b669d0e51b}},
		{X: Fp{0x22706b54d5c9f2f9, 0x627af15eddfc3133, 0x27b74b826c9a1669, 0x50e1f1a06ad2560a}, Y: Fp{0x554dd2d4e3a00420, 0x94da4f94ea920321, 0xa49b62853a74a851, 0xb3512bf2bb19c9ba}},
		{X: Fp{0xaf496ccb4e645297, 0x165a1d6d6bc33e50, 0xff9173cde45bf581, 0x2f6ea13d964df2cc}, Y: Fp{0xded24dbb88423850, 0x19ba8a3e6de343a6, 0xc4dba8aa127d2caf, 0x2089bfdbfa839314}},
		{X: Fp{0x8b32431ca7d9aeb6, 0xc299929631926d2d, 0xc5c45cff261193f7, 0x2789f516d57d168c}, Y: Fp{0x7fd2ebcc1e026e42, 0x2632ebbc94634d38, 0xf3b3e6a6143e626e, 0x7f18a7f943cb88de}},
		{X: Fp{0xfeb2dfaf9f50830e, 0x123eee596ecdef84, 0x64be0639938f5f6b, 0x3f4a1d53c830a23e}, Y: Fp{0x288dcf6837849704, 0xc92d2522dc74a39e, 0xd2a69ca83b71f80d, 0x639c47346c4f2103}},
		{X: Fp{0x8f7a4a87ba642a52, 0x4122962eef1d5584, 0xb568018c19d05f41, 0x919f0d7bbf4c0084}, Y: Fp{0x7aa85afdce6e172a, 0x3c0d871e3923b4ff, 0x0fb440cbdff19aa4, 0x07c4d560c6dcd750}},
		{X: Fp{0xe39977e3b6f1d05e, 0x3f3dc88f30bd6557, 0x85e03abd8aa23a1a, 0x015b6c41a1f81085}, Y: Fp{0xdd83155f56d868f5, 0x2a21f4be217f4040, 0x315c8ffc2148a25b, 0x0cd52dae013b1600}},
		{X: Fp{0xf7738c478823dc49, 0x51d5e61a528f5a89, 0x503de75bd05e1bfb, 0x28ff5f9539e2499e}, Y: Fp{0xde4439c8e17a4056, 0xf38da2be0165c96b, 0xfe42bfac1862e5be, 0x82cbcf51b746db43}},
		{X: Fp{0xc3135f5b7ae33d74, 0x4ce1ed90052805a1, 0x5255d3ed00af1abb, 0x4da9b36ff0db2231}, Y: Fp{0x0c31e2173f7daf98, 0xa0205ed279fb4656, 0xab8d51fb0aa7fb6a, 0x78e5d6362cb10e17}},
		{X: Fp{0x495787e6ce2b6b0c, 0xb65e87783b7b80e3, 0x6388a94b554a6c0a, 0x0d9f50e875498a16}, Y: Fp{0x09002dddba0ea641, 0x7fd73b38e7fd8054, 0x4a621a01fabd75ff, 0xa962d658107920a1}},
		{X: Fp{0x8c5964745b8b5709, 0x984376049c80c1c1, 0x90e81b6a3e544d25, 0x10623e0e45df1ea7}, Y: Fp{0x87e3156d0aa5ba22, 0xbac07f81fb10f91b, 0xbef69b34d3aa4ca7, 0x12db1922243de652}},
		{X: Fp{0xd806d6b410fcafdc, 0x9a992ee7d46e00fa, 0x94e068e502842466, 0x22bcd6f76fe713b2}, Y: Fp{0x8f3513e05f837653, 0xed63696920a9ab5f, 0x6295609f2564670b, 0xb167758b758f9560}},
		{X: Fp{0x15c3469fc8afcf1b, 0xad5d5e62a3984f06, 0xe5eb3496a926959b, 0xaa79ea2f6b161738}, Y: Fp{0xe736a53719c377d4, 0xd46e09239fff6e57, 0x6406cc63184815e5, 0xa0224feff1a2d7e1}},
		{X: Fp{0x2939085783d636be, 0xf02e5ae586a0d5b8, 0x8a910b3b67fcce0e, 0x88fff6b60f8c8008}, Y: Fp{0x3a3d8f79f6d08840, 0xf98fefc63454a9f4, 0x1bdcec49d91254aa, 0x913825c0065802b5}},
		{X: Fp{0xcb2912f4c7c7832a, 0x9c6fc4cab05cb10c, 0xcf63cb3e1d625dbb, 0x404fbf6d108e2409}, Y: Fp{0x9a97018d2c1be439, 0x16cc610e6588d763, 0x074290674a08c973, 0x814cbeceea7dd901}},
	},
	{ // i=31
		{X: Fp{0x869679d18d27c6a5, 0x50ffdf73156734b2, 0x3befc3336ddc5f32, 0x00a7cd4646722cc5}, Y: Fp{0x7e7b3aa641046c32, 0xe2675b53ba7b7924, 0x5b563470a273f9e4, 0x7baa16b44f0d37b2}},
		{X: Fp{0x00d05177379b495c, 0x00f1df7f2c9fd4cf, 0xfc72c79f3d8f1903, 0x54aab377a890e292}, Y: Fp{0x1e275bedb0db59b2, 0x796af744979a9a08, 0xb79a9a33fd88c3e3, 0xa789446a1908abcf}},
		{X: Fp{0x2f0ba77b1177c78b, 0xb16f959bdaf3b827, 0xda5fa8cd320bf428, 0x38a1ed15a0753c81}, Y: Fp{0xebe2ca9f4678cee7, 0x30c20b4b93c51ed7, 0xec2b1c40862c601f, 0x93c68d2334f92c96}},
		{X: Fp{0x478437539cd68bde, 0xd31c21489f4af11f, 0xcdd9f6482de34bda, 0x34643f0c0b59feb6}, Y: Fp{0xfca891286e3fdf8e, 0x988e8f11225b2812, 0x51de9845d2670d23, 0x3025e907c98c8d39}},
		{X: Fp{0x67bc9229e99e7549, 0x0a74481a770e01f6, 0xb65833f5cb2e0f90, 0x444c312153567ffb}, Y: Fp{0x948e8d9baf9f3c45, 0x63ad4cd8ca1b840e, 0x0b46a7e619cac53a, 0xb5b610fb7dbd3627}},
		{X: Fp{0x8f1c736adc26e627, 0x850f9497befbd6ee, 0xf652604531d117f2, 0x4a2e8dcf84480b2c}, Y: Fp{0x9c3c18f086aa9d58, 0xc7f9209f5fa8aea3, 0x0521eb5653ddbed9, 0x19d0d0aa29170d32}},
		{X: Fp{0xb03b28c8e9c1c416, 0xcb838e279adea9bb, 0xdc332a4e8c14e69b, 0x1cecf046593c7516}, Y: Fp{0x4bc7abcca6cfcf50, 0xde698c14e6acaa4a, 0x1568c5a58550a17d, 0xa9c8a59fa6016a36}},
		{X: Fp{0xa47cfeab53b46508, 0x344a77749a61d3a3, 0x109b1e5307453d93, 0x5cd8cdc85b38512e}, Y: Fp{0xdbb0329f03e7ff1d, 0x01936049bc2ae7e1, 0xee5e14154d7e25d6, 0x5aafb77167532985}},
		{X: Fp{0x1945218159990969, 0x1e70ec65345ab996, 0x96eba35a5aaa8477, 0xaf3bd2c53b2bae81}, Y: Fp{0xab38c778e49f1f4e, 0x02462066a8fe1748, 0x48f987b96e9d7276, 0x268ab55f985d23ea}},
		{X: Fp{0x54ffc96e87451a45, 0xdb926050c03fea01, 0x92cdf0d9d4764ffc, 0xb2427e50bbaab936}, Y: Fp{0x347abe208e0e7209, 0x08b72263c780cb1e, 0x27de5d4335b9c1e5, 0x7cf71c68753c07b6}},
		{X: Fp{0x33d0f1ff092a79a1, 0x4277b700f358f5e3, 0x29bf6b345ffcd1e7, 0x1c91c0f8748cd195}, Y: Fp{0x3afa056ea6c6d69d, 0x6cd38c464e3ebfb5, 0xe8a8a8de2aa22e71, 0x88812e1b2b8c7b47}},
		{X: Fp{0x89dc5a0282aae658, 0x7e972c66ad506cb3, 0x9dd13ce59859f819, 0x0aaf5eea2071cf07}, Y: Fp{0xa125d6698e2646d4, 0xce2ad48e90480c0a, 0xde9d1f1911be7146, 0x7539ae78cedf771d}},
		{X: Fp{0xcab8aa9a2a5234a5, 0x78bc34ba783be83f, 0x2313124d29c8f61a, 0x88823e7bb0194a6c}, Y: Fp{0x1d9e38f6e105678f, 0xf8ae740679833204, 0x9b7c9735f43f1904, 0x374d2412f86b1890}},
		{X: Fp{0x8b00aabc647b43fb, 0x15d21079460dd611, 0x5b4b88f9569dfb0a, 0xae31a4e029e8db06}, Y: Fp{0x41d9da0f8d569d9c, 0xa87ecd2e9e4d40c0, 0x021958f140916f7b, 0x80c6fd160b9f4d13}},
		{X: Fp{0xd0f37a1f79ce4fab, 0x09b87171cf8c2974, 0x486924833aeafd1b, 0x959a073f574c139d}, Y: Fp{0x7a216bf72ee8c69f, 0x2e53014a532891f9, 0xec152bbbb0391a9f, 0x36bcdf1deba5ae8d}},
		{X: Fp{0x61af86db0713994c, 0xb03bff582e7e4f74, 0x362c8aeb80c47382, 0x2b971b43a3943b4e}, Y: Fp{0x71a85b2cf3d3aa2e, 0xd7d639b9d2a51037, 0x18c58da44f9d054d, 0x408fa4c7f47824bc}},
		{X: Fp{0xa8a2207a913e14f5, 0xb58f2eec82b87390, 0x70bc328e31900534, 0x7219437fda183596}, Y: Fp{0x8d2d4208f4a86719, 0x33f072c867936b8b, 0x0d41ca17016d8b53, 0xb589e72b4dcef415}},
		{X: Fp{0xb996eac7f0aee3f5, 0xb0d32e9df2f9b350, 0x128f222a65476216, 0x882557532c129004}, Y: Fp{0x83dad5de81a1a8ba, 0xace9bf1fe4f7181f, 0xefbcc4bb9a8a8b1d, 0x5f966f5045026849}},
		{X: Fp{0x8e3071dc18c0f811, 0xb183fca7ee5e9cf1, 0xf87c44def49a724c, 0x8cfd9d947bd12274}, Y: Fp{0xaf5340781a97ed18, 0x3d0bd2fd70ebd34f, 0x43898cd6c2d002c0, 0x621f4c5336757165}},
		{X: Fp{0x5674c9bdd5aad6dd, 0xa5feac640fa9c9a9, 0x271544b4aed6c954, 0x7241a61a45b55b9d}, Y: Fp{0xfb16b4db1b07d924, 0x1bb55745c4b1f678, 0x8fc3ee08512649ec, 0x2b548117215d0208}},
		{X: Fp{0x7e000389074b2222, 0xcfc2befe16d6234d, 0x6a7ba92692b59c5a, 0xb24e383f22875489}, Y: Fp{0xda1512dfd3ecf9aa, 0x2038a69040ad38cf, 0xd08a23ebcdf00896, 0x0e4443aa522f4a36}},
		{X: Fp{0xd63f4f91c0f78afc, 0xd4ba70d610e240d8, 0x4fcc43475b0dfac9, 0x506b3574c6b296a5}, Y: Fp{0xf1aafde90304a827, 0x0850193f32a69788, 0x2d0b2c8058d95cfe, 0x8b1a5a08a479c2de}},
		{X: Fp{0xbbf096ca4334290c, 0xcbe16c7a4777f5b4, 0xfd5cc222682e40a5, 0x0f9e47eca40f46b2}, Y: Fp{0x2ba8e78d9e7140d7, 0xb68468f5da7e9e03, 0xdf70ed03dd2fa810, 0x9360add1fd8b3395}},
		{X: Fp{0x8ea41de51b0c6978, 0x556b03aaeb708685, 0x3932139d618fb683, 0x54e255dd30f3ef49}, Y: Fp{0x1856589865edbf2a, 0x602bb042ffa60710, 0x1a4ae0982e64912e, 0x817c4fe90f06634e}},
		{X: Fp{0xe4dd943e2f465d39, 0x2d6efbb8dc4240ef, 0x496ebddb56f4a149, 0x214d6a0673d8688d}, Y: Fp{0xe29d3c00e0a9dd5d, 0xdf31b9d4f3b78fb5, 0xf692624d0d2c700b, 0x5a96fb4ebf7f1213}},
		{X: Fp{0x13be9f79237f453f, 0x3256893e04f5ccc7, 0x7dbe0321e366afb0, 0x362bcc0a272f87e1}, Y: Fp{0xbfc07c2be53f6698, 0xc71443cd0244b8b8, 0x5fa5acf8cab92d44, 0x2d7adc1a75035f3c}},
		{X: Fp{0xcfdf8a0a990dbb62, 0x1197aea64a1e1e1e, 0x3ed126c2d8f8c835, 0x8e9a9ed9fb6e16f0}, Y: Fp{0xed9c17875f660039, 0xf7b1f269fbe253f1, 0xe0c9799495df12a3, 0xa292deb7a14615af}},
		{X: Fp{0xd80199204283f099, 0x6c4cb0da7a36e93b, 0x88966fdcf9079692, 0x8cea95d7d986b275}, Y: Fp{0x5dd6a79df82f813e, 0xee7432479a1f6d0d, 0x3d9eab8affff4dcd, 0x431792a8e90cef90}},
		{X: Fp{0xd446131bdcdfc59d, 0x1cfcc9b6ac80c319, 0x937e0d8d2a34be61, 0x9f05780cde835c54}, Y: Fp{0x32f25f0614d4839a, 0xc8253859610f03ff, 0xd8ed044b72b318aa, 0x49114a9d5050ace0}},
		{X: Fp{0x3a69cc614d27c45a, 0xa08b274567375600, 0x50a8e41945f519ec, 0xa0367f3699d4b9ea}, Y: Fp{0xee079dd5795166b7, 0xc95c600499765603, 0x2d5000f711fadda5, 0x06f49f971b7ee52f}},
		{X: Fp{0x629c2bbcfc987495, 0x90b82792296637db, 0x6a166b2d2a3099bb, 0x7e892887860aa845}, Y: Fp{0xac61b86f6aa95559, 0x93c5d24475051630, 0x3fcf33ddf919779e, 0x7b014b326f32be39}},
		{X: Fp{0x33d0b8b1f2fe6d26, 0xfe658b233a33e1c6, 0x7fac012cff531bba, 0x088bdf2844f7ee3c}, Y: Fp{0x5f8281dd2dcd9569, 0x561e0a08923bbc5a, 0xf0594618b018f165, 0x057b1cca5a7f4b6e}},
		{X: Fp{0xe6fa55627a21969f, 0xb4f2bf045c1832aa, 0x4016fdee3b1813e9, 0x65fa13144af5ab53}, Y: Fp{0xaada3bcd56289995, 0xd19e6359e029d8fe, 0xf231080696b4a05e, 0x32fd3f2d93f852f4}},
		{X: Fp{0xf0f7455eff82e8e7, 0xb19c817f846c1d66, 0x7ef29f21c5a41b94, 0x8a6201bf34cef336}, Y: Fp{0x4e0261675f5775ed, 0x451f453f77d22f4a, 0x61b53545f11c2a1d, 0x6851c0e8a51e86b8}},
		{X: Fp{0x4e44fdabbd1fb577, 0x14bc620b8ca1e38f, 0x2d8a314a2078fddd, 0x4450dddf080b5c77}, Y: Fp{0x283e2cafcc0e3a33, 0x6c21acd564faaf08, 0x9e692bc028e1f4a2, 0xb3fb73021f7908c8}},
		{X: Fp{0x640016e25a476a99, 0x7f2b7421da834dfe, 0xbe65ad0ffc7998ba, 0x740091a38a57fd02}, Y: Fp{0xcdab89494696911f, 0x9c1d49babf034ecd, 0x8f292ecd08fd1278, 0x63e9f89e13b98228}},
		{X: Fp{0x39ca04d1541396ef, 0x89be12631da713b7, 0x55e60656a0309905, 0x077ff76d1f6ed329}, Y: Fp{0xe575e9e8995b646f, 0x3a25d9f3fdd04370, 0x54d42b9c530405dd, 0x15bd34ffc1584fdf}},
		{X: Fp{0x5af6a58779e447d7, 0xf7ab4195075f430e, 0xec55b92b19ac1a00, 0x8dd7d55d71db463c}, Y: Fp{0x31539c9e0c8019b9, 0xa1ee70ebe22d6909, 0x6a0cdbb4b96c3733, 0x9fa29c041d0842c2}},
		{X: Fp{0xf01047ead961fd61, 0x339af111acfb0bc2, 0xb6527abb7c0abbfe, 0x88eff9136beeeb72}, Y: Fp{0x789aeb07e9ffcb88, 0x959f3d931390f5b7, 0xb5250d7f936a957f, 0x7400cbc673f16408}},
		{X: Fp{0xb5c3f63c4e9156f3, 0x7b95aa555d6d78dd, 0xcb0c4d3d83f030c2, 0x94c5b713c9849f61}, Y: Fp{0xbef9d65fd303e29c, 0xb35ecd56229327c9, 0x65789dc47b1ba4f0, 0x221d7d6ab8d8ab1e}},
		{X: Fp{0xc780572afdf0cfc5, 0x87bbc0ae2374fdc5, 0xd3c08e7222d2f339, 0x8de80e5070895ca0}, Y: Fp{0x0dc15043fa5da72d, 0x074a02f1e94f7cfc, 0xfddd8d48c0301ede, 0x357d9b95d812e7d4}},
		{X: Fp{0x65ddbf372eb9f08d, 0x5f4ef6998a0010dc, 0x4f83be5589c46f1a, 0x6fcd58ecf40179bf}, Y: Fp{0x1626497cd53b30b9, 0xa61257bfb0625be5, 0x68c56cfaa823211a, 0xb01105a89e80e384}},
		{X: Fp{0x147494bd9353d7ff, 0xffd073c5d69d37b5, 0xce18ed67a92756d7, 0x6e43b21000f84405}, Y: Fp{0x27e6ef130d356de8, 0xcc21c933a94b56b3, 0xeae07930a7ed60ab, 0x807b686ad2de870c}},
		{X: Fp{0x92c8e2dfca411eb1, 0x0077d99a0490e055, 0x2c233ea3268c2c3c, 0xa8935935be69330c}, Y: Fp{0xd9b2878b9c96eb67, 0xd24c572af33ef7c9, 0x74f409cb9440ed55, 0x02ed61d587ab3777}},
		{X: Fp{0x912d57bdbfa4be1a, 0xfb2ed10676b62483, 0xf9e1a12ef5243a88, 0x5ea83c1f0dea7817}, Y: Fp{0x7f0d230fc25556e6, 0x0e5501474addd3fa, 0xdd21a6d2f899aa97, 0x4b2655c8976961de}},
		{X: Fp{0x8b749a77911d6201, 0x47a1de15b26325d8, 0x9e8b912df2eec2cb, 0xa286d1decfcd11ec}, Y: Fp{0xaf10fcf862dc88d0, 0x81a0f7200222b10f, 0xb6746ab58cd8c52b, 0xa5cd9153f37ca112}},
		{X: Fp{0x03ec1a80a5dda00c, 0x8cd0d902e05c940c, 0xf1744b38377cb4e1, 0x9cc6db04c500cae5}, Y: Fp{0xa816f8c214043b5d, 0x4b04ec686dfde40b, 0x6775ab7210f2cae7, 0x7f39948f68b57b11}},
		{X: Fp{0x3fb0d7a8ccb21f08, 0xfe5cb2392c37c357, 0x0f92d34e6c0e8bfa, 0x2f151dc139fae3dc}, Y: Fp{0xb9bce2613ddae208, 0x443ad352e4a3e391, 0x479c7f4d426d090b, 0x578260acf004230e}},
		{X: Fp{0x53fe336626d50013, 0xf15f8abd3bd86f9a, 0x7432b0c97fb74592, 0x2d4b48fe44f559af}, Y: Fp{0x9d948e32a2e9e6b7, 0xe5dc8576e07e0810, 0xa9fe932a03328226, 0x1afd841f96113b50}},
		{X: Fp{0xbb0dfdc635a5e2b4, 0x8a420bb38bb6e164, 0x61a22b8ad5ed18d7, 0x3e6a951dd42af9ad}, Y: Fp{0x26794acf5c5ef981, 0x8e70baeaf46ea115, 0xf9b34c03d05e4f72, 0x310f214c8b41f8db}},
		{X: Fp{0xa6fa64bd19bc36bc, 0x9842fb0ed16d61aa, 0x2413c2d452546dbc, 0x4a9d928c388edbb9}, Y: Fp{0x8908645807423d42, 0x179e2bb34082abb7, 0x540da222b2c364d4, 0x9b7cd3c667cad413}},
		{X: Fp{0x56f8571054a2753a, 0x85a37e214e2e43d5, 0x748a310cd03e9695, 0x0bd7c866e617c1fd}, Y: Fp{0x0660246f368fc05a, 0x01625b6d3b982db0, 0xd82b47b6f5e7eaaa, 0x1dbc005b2a5c3382}},
		{X: Fp{0x41f61070ad8e8ce5, 0x2af9ffa3c2524242, 0x8fb47f5ed84e32f9, 0x8030feab5afe7502}, Y: Fp{0x44fd9ade7574662d, 0x8714b01b247228b2, 0x0c43c1efa9f26e7f, 0x8a5c82254258d756}},
		{X: Fp{0xb7c046af984874e8, 0x7fa066ac99a3d63f, 0xaca9bf2515583dba, 0x1c761c601937f70d}, Y: Fp{0x7736b881bff949e9, 0x914482a2cd203e1c, 0x7a3eed71e3afb2f3, 0x4cd4dee40271096d}},
		{X: Fp{0xfc6843a97a895370, 0x9851e3b071fa69bd, 0x300159e77933df52, 0x3407fafeb0dd5804}, Y: Fp{0x8912cbc914965e3d, 0x01dca6b969c7e462, 0x73c646b83304da3b, 0xa77a215e12c02f26}},
		{X: Fp{0x62e180d653651a9d, 0x14004c083e0a8531, 0x25d759d0fd2f1776, 0xab9cda17063e945d}, Y: Fp{0x19bc628068ce0e71, 0x6f60b2b6ea568811, 0x80e4079beacad6c5, 0xa6f9823272cc3e06}},
		{X: Fp{0x82f39543c3251ce0, 0xce7d6a5f0ccad298, 0x9cff8dfa1d764b0b, 0x16039edea1403b3d}, Y: Fp{0x7e9c046cb87cad5b, 0x896b2aac9e4b180c, 0xbb78908154813549, 0x51d872b147f4f21b}},
		{X: Fp{0xf42ba41e91e85ba4, 0x445b50f13bb81a5e, 0xcd60d6d2569f6937, 0x643145dc33a52a65}, Y: Fp{0x2cf333601a6e18ea, 0x041175141e4f8d66, 0x51eaf5bff08b79bf, 0x7de9079ed74e21a4}},
		{X: Fp{0xfb255ec389cf4b68, 0x2ef00e2c20a8b834, 0x8bc58f9d0465fc8e, 0x02e65bc169b84188}, Y: Fp{0x5a24d9a899b4f9c0, 0x5bfb115020a6c87c, 0x8686cd8199a3c120, 0xb10740792f75e095}},
		{X: Fp{0x8ee7f52bcc62120d, 0xbf3f9d2ef7284ebc, 0x482b9f031a158a65, 0x268da9ddb48cdd0d}, Y: Fp{0x4cccc13107796478, 0xeae1e63a711c748c, 0x58748e18eceddf4f, 0x56718e831613f09f}},
		{X: Fp{0xe0df52cede2d1d68, 0xe5e6056f392a1654, 0x6d2272176e9578a7, 0xa1936c07c5fd2d25}, Y: Fp{0x30f35e2999231480, 0x4128785814b16f35, 0xffc01b47f6b04158, 0x26589209f31af038}},
		{X: Fp{0x1e5612c65e9042a8, 0x7aa47e2834cfdf10, 0x6b2367a4720471c4, 0x95abe069fefe7ea3}, Y: Fp{0xf29273839fae5787, 0xf378fdfbf1ce7ea0, 0x91ef7941cd6b59db, 0x203637b58c02cae8}},
		{X: Fp{0x3eb6689c689c2e12, 0x02fa21e3a258622c, 0xc61e3c6b09726e6c, 0x271665fd6e149635}, Y: Fp{0x99ccb2a31f4c3a1c, 0x639197ff9b6b9dea, 0x35a39e89bf46251d, 0x0ad005d3ce0d5f26}},
		{X: Fp{0x56a58f8033e76ebd, 0x2710122db072ad6f, 0x8462058ceb9e3cf6, 0x583ab84466ffa0d0}, Y: Fp{0x3de4cfc28e7a8272, 0xcc663b8e9f67f641, 0xfd6b39af4be6d82d, 0x86585ccce39b7365}},
	},
	{ // i=32
		{X: Fp{0x8bd9077793384ac2, 0x562cfab6f939044c, 0xe48a7412cbeee7a4, 0x7018feb31e1b2c27}, Y: Fp{0x93a427c3005e372e, 0xd75aa13fd23f9921, 0x118cdda96b6e31a6, 0x7cca0c12e96bd486}},
		{X: Fp{0x825de33aa04c67d1, 0x2e1c6b843cacd69c, 0x5cb8fa60d6489510, 0x7f06a5ad770eb9e9}, Y: Fp{0xebc43506fbe05214, 0x76636e1a63fb1f7f, 0x2248c084ad2158c5, 0xb5eeeefefcaefe77}},
		{X: Fp{0xdfede8d422ae8747, 0xeca30d498134eb3b, 0x278590f7729e2646, 0x7f08141c330ac79c}, Y: Fp{0xf9f6e33b9b86fc33, 0xff1e0ae7951e9167, 0xeb9325cb4fa65861, 0x070d1b8d4f35d730}},
		{X: Fp{0x90312facf9ce6496, 0x35eba98bb2da7571, 0x3f019e0cda0af82a, 0x045aec73f22f4ef5}, Y: Fp{0x2c661a486d3899d7, 0x5da6732d617c52d0, 0xfc8a319897e96be4, 0x7c2bb288dfe7ee6d}},
		{X: Fp{0x029e09a1746c7a51, 0x08643dc340dc2133, 0x42233382bcee0b69, 0x4992e750ee712383}, Y: Fp{0x07db08e9d595d9b1, 0xcf4209c849e7f171, 0x4a0d8f10b351e08e, 0x1018eb33986114d4}},
		{X: Fp{0x0b84b628f4ef92bd, 0xf67e9609d483f8bd, 0x0be89186ba85f140, 0x88d1acfade903118}, Y: Fp{0x80ddf9446b2428cd, 0xc200e680679ad4a4, 0x5cb51618cb950305, 0x6624b5b2c259e0cf}},
		{X: Fp{0x1f8b405ce383566a, 0x563bbf9f38b0a0d4, 0xf39f93835c30fd22, 0x342ba459bb6e13c2}, Y: Fp{0x52791fb28568b8f4, 0x8b98748a1ff3c3ad, 0x8835476aa00e7754, 0xad34b3f714db9885}},
		{X: Fp{0xf29d306d3ebd5acf, 0x189512a1daddc5c2, 0xe17d9ca24dcb4bc9, 0x3dab2bd91d19192a}, Y: Fp{0x4433d55a1c241b57, 0xdaf947ffee3b77e8, 0xf63b7d705acf883a, 0x0d84f0ebbe861beb}},
		{X: Fp{0x4c977f3f041dec11, 0x7357687129471103, 0xe6ca1812646a9c56, 0x1672c4fd4e126b9a}, Y: Fp{0xebf559af86a64675, 0x3a27d5ba7da225fb, 0x5083fd552e955ed0, 0x65e2826c6c96fd23}},
		{X: Fp{0x3efa4aeb3475ccd7, 0x9d5e0d75b7250297, 0x3a406441e5660c0f, 0x4f77c9430ec9aec3}, Y: Fp{0x064d45478d4c7f14, 0x179eec1b07659437, 0x4960bd7475fcb465, 0x8d703c1ce85b9ced}},
		{X: Fp{0x1c64168c9784db80, 0x3b58e25650a56963, 0xe50e3625157fd1b1, 0x4c0eaab890dcb42c}, Y: Fp{0xf02382607c917aff, 0x599d4717d7731f1b, 0xb7a45aa5fe6069a9, 0x5050f5e2990a65f5}},
		{X: Fp{0x268e04e1c05b2c9e, 0xca722bd727ef9957, 0x07523e191bf2326d, 0x7ade12e640d56920}, Y: Fp{0x0677f9cb558632b5, 0xe533575c9de1d91a, 0x82a57dec1198cc41, 0x74050dbf1ee82827}},
		{X: Fp{0x3e7d94fa3c78c68b, 0x482a31d8c95e3e03, 0xd678e5f7c29387b6, 0x6dc1a09d4f07dee3}, Y: Fp{0x0e9e06c8fe284a12, 0xa42fadf842e71310, 0xa7e73f4ba6e044ed, 0x2b75f59a4a425edb}},
		{X: Fp{0x3b3fb9818dc42bed, 0xc8a9851e41253b91, 0x9909583167980dbe, 0x5b7cf661f83d2c76}, Y: Fp{0x275a0ea1f449ec1f, 0x96421171e054ec82, 0x386e76086bdca436, 0x21047e71aad53687}},
		{X: Fp{0x77062d76c880666a, 0x378d5c8535dafa4d, 0xe786c7027b7d58c3, 0x73b3db713ff36165}, Y: Fp{0x1860e8a3f817da85, 0x6888e465bce568fc, 0xcffd672de33168bd, 0x1f9071351483bd23}},
		{X: Fp{0xb346f4512bc29ad6, 0xce7a486dee6a87f5, 0xa1a40f067e786a76, 0x7e6eeaaab1231b89}, Y: Fp{0x6a8f9e73fa79ae2f, 0x22a7d9d1fe5f224d, 0x445da25505e5e400, 0x42f780938281c5ce}},
		{X: Fp{0x81787365c90ee155, 0x8060466d08c80d20, 0x2e8e1e70602494f8, 0x4f1611158458a3a8}, Y: Fp{0x390546f29a9e24db, 0x3f4f8866c8cf8b30, 0x7bfd7a027b1f6d72, 0x787d1677a3e76d1c}},
		{X: Fp{0x5accac33cea43312, 0x2477585952c086b1, 0x7f41168ede40165e, 0x5ddc2e4233800354}, Y: Fp{0xc034522e4052ff85, 0x56aa13025cb1429a, 0x8d708fec69d434ef, 0x144fb304ba841848}},
		{X: Fp{0xab5fedf9919097c3, 0xba0e510c470a1b11, 0xccabdeabd13c3d64, 0x128f303b2628cb90}, Y: Fp{0xb2b407e22df40629, 0xc9fdf8eea19b61e2, 0x1035c6737f5d9d8c, 0x998463aeda04eefd}},
		{X: Fp{0x1499e68809dfd66e, 0x17d3bb2d961a9503, 0x51aeeae6ded619f6, 0x3c164a7d6d720be7}, Y: Fp{0x4f4ca647f3df9914, 0x60af6f9aaefc283d, 0x6e64c39202f4e99f, 0x8c7061ace497e75f}},
		{X: Fp{0xdbe2646c4847c49b, 0x9537a918bd443285, 0x988e617f6669df37, 0x3eaa4cc0801fdc46}, Y: Fp{0x1d042984aa9999e7, 0xd792a4a74b999732, 0xc3d0bbb7ea749373, 0x919ebee73eb74bd7}},
		{X: Fp{0x93b05c16a1d82ab4, 0x2e232f10ddda0575, 0x89120f921d3f0764, 0x271d24f8a4e0b971}, Y: Fp{0x7a6b7ae5f5d4ea67, 0x5d8c64ebff2dfa27, 0xadd137820ac90094, 0x32ba05b8f75f4895}},
		{X: Fp{0xde0871134c10bcc0, 0xbac9b71c45c02ef0, 0x3322b3fb89911662, 0x72cbc3997a56bac9}, Y: Fp{0x205d967bc7133beb, 0x13b495ecc421f90c, 0x4d224892b32ed43b, 0x201cfa5eab5df65e}},
		{X: Fp{0x1345ca11bb6169a5, 0x25e7b4b22ecec0d7, 0xf59034ab792a2e4e, 0x4d0e3fa58e8825dc}, Y: Fp{0x003374ac61ea3c0f, 0xd125b6269a0c34b8, 0xd1cf29b8f4a9009e, 0x7b74b365f0bf0fc6}},
		{X: Fp{0xd0dd364d8d12d198, 0x306865bf6403abec, 0x7f3eaab9bff6ae87, 0x155fa621d5056286}, Y: Fp{0xc9cc90b3897d9e12, 0x412060df936836f4, 0x2f89dd2873a232b2, 0x743a1c1391a81f59}},
		{X: Fp{0xfc5b8ae0ee153d42, 0x34f8e59e34dc2063, 0xe9bd8d15efbe086d, 0x88eaf69614435848}, Y: Fp{0x7506ebdb20dd70e8, 0x1cdd1c0e5105c9c3, 0x9c2079ac2a1cf866, 0x1bc2e7391f9436af}},
		{X: Fp{0x64e7b11a4f374faa, 0xc9029f79453a33e9, 0x60151a326ebaf155, 0x6b70ed0cf57c2138}, Y: Fp{0x0c53a1169e48f481, 0xbb5b596d29f43434, 0x2313586f2091ae1b, 0xa1bd8c785f0162db}},
		{X: Fp{0xe8a9a30e29cb99ac, 0x73e5dee65fd3e85b, 0x1553dbccb0d9716f, 0x66f40eb24cc88145}, Y: Fp{0xdd039f5b6ee336e0, 0xd9d760c866a1a393, 0x5810c0e9909be817, 0x439e094c0d99e3e9}},
		{X: Fp{0x9ff9d82882a881cc, 0x54d26fe906ebbc43, 0xd561489210c74e9a, 0x27bc6c7ae7908599}, Y: Fp{0x072b6fcaefd168c5, 0x36adf2078f012b76, 0xf1f10fdf7a5d4a6b, 0x917015fad5ce11d4}},
		{X: Fp{0xdb1804b91ea1af78, 0xc04cac27bb0e0d37, 0xd2298d281be5bd70, 0x9e7753e949a76e3f}, Y: Fp{0xb3ab03fcdae46e09, 0x05463f2a31e29886, 0x43559277aabe176c, 0x8386351bbe0f3773}},
		{X: Fp{0xd2b2fb10c46a4705, 0x3448e3f39731e712, 0x3a19d84893554301, 0x854a1a389f7e8547}, Y: Fp{0xac809b0cc2964c2f, 0xfe9571c1ffd6e150, 0x65d3afeb65b7b3e0, 0x1f438ee3df3d103d}},
		{X: Fp{0x253354fea1e1ce05, 0xb33e4cb2687b8d2e, 0x8b6659167c2e1c2f, 0xa3383439b1f5a744}, Y: Fp{0xfc81b9347b286771, 0xddbce1af43c8b426, 0x16eaa4032477b9af, 0x377ea9644e2b19d1}},
		{X: Fp{0x9a9dfd4fcaa4f5ec, 0xa2acd57f0ec24696, 0x78b86482d6a8ba8d, 0x6fe5f14aab7d7bd8}, Y: Fp{0x0e3a65857f230a0f, 0x71d1d1c70e147708, 0xcfa68b9d0ef304ec, 0x4cc797521b5c17ab}},
		{X: Fp{0x6bc9614e1ba42045, 0xa203921b5215fb72, 0xed8ca44f51d17030, 0x16a9c8bbb3418076}, Y: Fp{0xe1d97a1424c731bb, 0x47cc257cc267c6a5, 0xf761ab8470453ce0, 0x555ddd858613047b}},
		{X: Fp{0xaf607775da87c8b9, 0xf72d7efcedd48a56, 0xbe59f866c627768f, 0x21a12ba363901855}, Y: Fp{0xcca8387dce36b5b1, 0xefa82b5713e3ead3, 0xabd01d92788dbce5, 0x98da24f8f81f15e0}},
		{X: Fp{0xa27a240adc3b517e, 0x837354cfd6d40693, 0x42911b907499c98c, 0x733041e052d54ecc}, Y: Fp{0xd229e0869e8a42e5, 0x23e4a90186bee738, 0x927887d344a3bdbb, 0xa65033cafac2eef4}},
		{X: Fp{0x1735e8d9c8f1a3cd, 0x429e6ab6e7287b29, 0x71bbdf9df55faf66, 0x2e053d8c172ad909}, Y: Fp{0x57f417004a9ed728, 0x0ba7ba4beef90b5d, 0xfc57978d1b40b9c3, 0x35a55f95e8b9fa13}},
		{X: Fp{0xa35aaccfe855ce8e, 0x54b1bb8447dd8f2d, 0xd2574a1d2272b7ab, 0x9c662c6516dcfa7f}, Y: Fp{0xab69d964b5e1637c, 0x1ac631a155b5fcf5, 0x43c0658705e3ae94, 0xa5b31a82e04a46d8}},
		{X: Fp{0x21c5bd4e1c138f56, 0xcb247177929e40ea, 0x68446def55a8fc6e, 0x8e4783bd6e918e97}, Y: Fp{0x4b7fa9bc6da2cd4d, 0x2cf25fa50a24a2ec, 0x1e0b800e8ebe314f, 0x10567f5898e80c69}},
		{X: Fp{0xd26945e786b625a7, 0x9575e88078c4038c, 0x78ede4b3c73e406c, 0x1f8b2767bd4c0be0}, Y: Fp{0x724ba45bba026b46, 0x5740b6574b158311, 0x6449b562419c16b9, 0x31f90c90f773a3bb}},
		{X: Fp{0xa1028e4643c2f8b5, 0x44c2670240845ae7, 0xcba6e01bd23b0d9d, 0x3a86a2e104d52b6e}, Y: Fp{0x45462c945badf419, 0x5d240c6dbefcf1ef, 0xde9ff88b2996fc0f, 0x9b139387ce55dd1b}},
		{X: Fp{0x7328876d96ebca08, 0x731ead37213dfe57, 0x83e18c2b8263ef3b, 0x71e07dffa8f3efe7}, Y: Fp{0xb123c93101e45bb2, 0x40dc5a5628cae596, 0x98591566f73cd5aa, 0x41511e1d876250ab}},
		{X: Fp{0x3cc7cfd289bd7dfc, 0xa15e7d7ada8e7b44, 0xde385e3257496f1b, 0x25d864d2242e5ccc}, Y: Fp{0x14bc5745b89f2e8b, 0xed5d91a9ca0bb74a, 0x9616cb3815301ab1, 0x0bfc5be28746810e}},
		{X: Fp{0x645d2dc5863e2507, 0xf5f05abcd323b394, 0xc687f796c8b267da, 0x333eb7b5cf3478ef}, Y: Fp{0x70edbde17375658c, 0x45d278c25ab317fc, 0xce61a0078ceaa8de, 0x8c338a124188fac4}},
		{X: Fp{0x5d8af172c56966a7, 0x09830c608a44fc4e, 0xd41d1f5e863cbb0a, 0x1ce7986e25e0f56f}, Y: Fp{0xa2e6e7b3c43e2d7c, 0x52c50662547dbed9, 0xf4b5212de3c7d1f6, 0x1f1582200126909d}},
		{X: Fp{0xf4e6231b32b2bd02, 0x814aa209246b903d, 0xfcee67f95bc3d773, 0x31d1411f7e9b5782}, Y: Fp{0x81ebe3973446b8fe, 0x33f20985fb7c9aa5, 0x8933db2d4c9c5509, 0x49948512250410bf}},
		{X: Fp{0x7e052a01e30fdadf, 0x588abe45e5e92dd0, 0xcbc3af870cf17aaa, 0xaca5448da402300f}, Y: Fp{0x028df08ed428c2e6, 0x28f2c85074a93bbf, 0x0800cf54fc313509, 0x356d86cc4fdbfb26}},
		{X: Fp{0x08eb82282714dd9c, 0x104268b5695f3ea3, 0x4059575c8336aa0d, 0xb3e38b12dcba8b18}, Y: Fp{0x101f284591e99168, 0xce14f89b71000e74, 0x00a9f4dd837ec708, 0x626b762458879b81}},
		{X: Fp{0x9af04fa321052a32, 0xac315195cbcdf5cd, 0x96a3bef60f1a6fc8, 0x7dad46b7a65d5e7b}, Y: Fp{0x0da6371fd05d1306, 0xc7af15f011692017, 0xe02c3d9ab5d3fc3f, 0x94c1208b78457da5}},
		{X: Fp{0x8f5f0162ec08d779, 0x56c7f9413920ed37, 0x770fef5062f5812e, 0x5f01d8bb438a3977}, Y: Fp{0x08d30baaa824b075, 0x4d374ee7e5f87ad5, 0xd9d635fe981ec7b6, 0x97609c9441333591}},
		{X: Fp{0xb81d2aff61b56844, 0xca95489ab70a11e3, 0x5e454c90b373315f, 0x15b7907987fc14ba}, Y: Fp{0x93c423ff1dcd357d, 0xb290e8aa49273113, 0xae4ede5766c06ad5, 0x266f10aeef8b6ae4}},
		{X: Fp{0x1495e91d7133e608, 0x704abc01a79a6e28, 0xa7fdaab0d63da724, 0xb19d398602735974}, Y: Fp{0x3e3b960499e75bd8, 0xb63962f67acb150b, 0x068d5287c69c8799, 0x86b412e2d21fccb6}},
		{X: Fp{0x83f0bb82f07aa5b0, 0x07e3e33622ce0708, 0xff35de2a0079d6ff, 0x0382b1997ec95e4f}, Y: Fp{0xd4c69837f370674e, 0x46b968c185ea6e8c, 0xdefc68d8c9fee92a, 0x21d8aa664cce4971}},
		{X: Fp{0x543e5893450dfe7a, 0x4cac122b1c2f4ced, 0x999e306cf3c038eb, 0x67ee7b73cf5bea0b}, Y: Fp{0xec121cc91f04623f, 0x9f24874ad85d4ce0, 0x84dc42fa3592b40f, 0x2e5427cac3ac2fe5}},
		{X: Fp{0x62f17daac3709d7b, 0xae990d12fb979a22, 0xebf17b96f6e96ae5, 0x375d97b70580d8c6}, Y: Fp{0x4e94b5a0a4fdce85, 0x06830231a9b384eb, 0x7c5b8eee7d56c82d, 0x06158044049725a7}},
		{X: Fp{0x2a8b7c889c7839bb, 0xcb1527268c67c969, 0xf7652ac5327328c7, 0x3f3a089614221f4f}, Y: Fp{0xf8e420bf08833344, 0x0362dde23b98730c, 0x9aac5a9e546f3ab1, 0x7e4de2d94c8c0d42}},
		{X: Fp{0x8d524e5a14abaf98, 0xff36747df09353fc, 0x43ea68329b58ad07, 0x9825f6753f4199a1}, Y: Fp{0x8dd9489cc1ead50c, 0x5448e31c2eaeb607, 0xe6a34197b8fe752e, 0x580af72b4fd87d19}},
		{X: Fp{0x7d62f845d69f4072, 0x00844ce3dab0296c, 0x303786a53221569f, 0x93e51c7facf58d51}, Y: Fp{0x0230223d52aacec2, 0xb36bd339fd497a82, 0x6c93ed4beda25f24, 0x7446b69a6c7c8b18}},
		{X: Fp{0xa05757c0759b7064, 0xd4d833a210615610, 0x447b6a8937da1ffc, 0x31199f2f09edc841}, Y: Fp{0x6793b24216402d60, 0x39fa8b460825e244, 0x795c65c5ec864e03, 0x021792914a02beb4}},
		{X: Fp{0xfa902df9343806d2, 0x9bb90c610cab664e, 0x152379532d870b18, 0xaeb3bb81e841783e}, Y: Fp{0x3f473419357db5e0, 0x5fcc403522e9e7f4, 0x0b27b18ffb4e2281, 0x541993748bbfb83d}},
		{X: Fp{0x7e5570cae679190d, 0xeb8e4701b8a0208c, 0xb48978ff991628b1, 0x18322d8c8d512f45}, Y: Fp{0xfab3103bc106cd01, 0x8eb2896a76bb037e, 0xf466a77ad22a655d, 0x35c6aef805cd81f9}},
		{X: Fp{0x4d484709eed74710, 0xc82d51e1bbf47774, 0xbe842c59fec7e069, 0x9d75aa5ab23e7ac2}, Y: Fp{0xc94d123ba001bc06, 0x0f8969a0cfd4bb9a, 0x99d86d0814403c3a, 0x723b5be830a2e160}},
		{X: Fp{0x5dd6b8d926370e20, 0xb15b592747dbe310, 0xd45dec8df1293baf, 0x3a6e4129364e2614}, Y: Fp{0xd1247afa5a9f84dc, 0xeecfb0707222cc3b, 0x07f9cfb52fce86d0, 0x134a83d59701c55b}},
		{X: Fp{0x2ac3d51ee3947b5b, 0xd450e803fc576bc7, 0x27818fe172e525a3, 0x75d38f8fb5e5e51d}, Y: Fp{0x883a76c9862871a1, 0xa2bf15af83249a18, 0x0fe7be84ac109745, 0x7932ae5936b01beb}},
	},
	{ // i=33
		{X: Fp{0x00815e72dab78686, 0x9f6bc903d5c02891, 0x5327baece2a77281, 0xb6069ad2938d823c}, Y: Fp{0x4dc137541cd02d61, 0x9383f7579b40522c, 0xf60c59a8a202e134, 0x573a7d3439b94236}},
		{X: Fp{0x2e614b70147c9825, 0x67b0838bafd78bd8, 0x29f61e10c00c03f5, 0x93a5976fb10136aa}, Y: Fp{0x7a4567f3edd9bb2f, 0xc2b40c7554bdab2f, 0xf9c8eaf2712f47e0, 0x6383bb5fbea6a1fa}},
		{X: Fp{0x3273d5f2f759209e, 0xfb98709494d64d8c, 0xc7cb4e96ad2f3e71, 0x5915bf31d2032161}, Y: Fp{0x49604bcc57b6ea61, 0x64d6c3923552d880, 0x21d5e5ff5115a671, 0x1ca6f51841e6ec94}},
		{X: Fp{0xaeea3b0eed303222, 0xf564d08fb8bc00fa, 0xda04e786c1e5a732, 0x9cba4e27fe09239e}, Y: Fp{0xd804621428f0dc14, 0x944c321df523f590, 0x33251eaff59715b1, 0x5f16cd20c9302c25}},
		{X: Fp{0x5885cd6dbb4b321f, 0x2af6b1c190e321a2, 0xb649111f8f2cd7d2, 0x3e97fd4b733f6c3d}, Y: Fp{0xc2a2c9bc852cc6e0, 0x1fdc749e8eb60965, 0xd51b7207b5556f3c, 0x502a8b7bd582eca5}},
		{X: Fp{0x8a3ce0764f7093d8, 0xee16dfeb68c6f3f4, 0xd2e171f488834829, 0xa70c0cb6ef1edc25}, Y: Fp{0x00e725ec9026e367, 0x92b17edce3f1bc43, 0x7478cdbb76c6ffac, 0x138f5f5d26109244}},
		{X: Fp{0x8a609f7643f9b744, 0x9298a171ae384be1, 0x3f9acfebda2cd355, 0x98136507049d558b}, Y: Fp{0xead7fed0134d3496, 0xc03080abfff61730, 0x02a770270953c137, 0x0f70232a8f764a4c}},
		{X: Fp{0x9b5d96d8afe1e18c, 0x04323567de41f7f1, 0x94cf127514a00f59, 0x121f6e8387c6e810}, Y: Fp{0x921812b868e40a32, 0xff2bc121d6c8a080, 0xb80994546fad4440, 0x0d908db47bded40f}},
		{X: Fp{0x41ddeb36a80fa095, 0x9f5a28fdeb1a14d9, 0x1a3b13f864438bbe, 0x5b8ecac52dbfb21e}, Y: Fp{0x16df82e1a281a876, 0x66884c7e1d8cf49d, 0xa63a467f375e23bf, 0x078891deea02b0a7}},
		{X: Fp{0x65bf4af58ec8069a, 0x5c4de95f70b0120a, 0xfcf5a8f8d1eea169, 0x2d5a12b83083539e}, Y: Fp{0x98a90c00fe1aebc2, 0x8a85590cddb8265a, 0x754b8a6643cdf91a, 0x12df4880db19d35a}},
		{X: Fp{0xecd92a2497510392, 0x89e5fc6024b96999, 0x5c780d6c0569f7ca, 0x82d7eba5dac00d2e}, Y: Fp{0xef23f20a9a474706, 0xee75f92869ea01dc, 0x88561ba94766f748, 0x614049978d370ea9}},
		{X: Fp{0x9fdc3ded68f558d1, 0x84a8f2509650357f, 0xcb4bd86e2be9f927, 0x63692cb7892806a9}, Y: Fp{0x400eef61f2237dff, 0x4a78e95c3afdaa2d, 0x03203415f45bde06, 0x2b636f040dd6d200}},
		{X: Fp{0x1b9531190e823e46, 0x570819d5dc46e937, 0xedfc71231deb73ed, 0x3de693b138923788}, Y: Fp{0x6d49e447ccd4b935, 0x3d07dfe6d883f048, 0x55ce396d804804ba, 0xaa96718c693ffc58}},
		{X: Fp{0xa7dab995e1cc77f6, 0xa65b2a30d2cc4b58, 0xd102f85e117eb6cf, 0x216de652d81bb4c9}, Y: Fp{0xf3d73f91cbc74123, 0x294a364a45ae34be, 0x41366daed55fb871, 0x7229b7e657a2ce6e}},
		{X: Fp{0x403c2c8f9d0991eb, 0x52f5856d1b3f4540, 0xad3de99987bcc160, 0x5428fae76b2c4e42}, Y: Fp{0x4a38e97a1d1134e9, 0xd92badba9fa826ef, 0x640ebf7f9dab5458, 0x4b7c5e48e00f2228}},
		{X: Fp{0x63b39d8aee4d3062, 0xec2c2ed7252cba66, 0x60f696e768cab6cd, 0x0ec6286e5bbc69e4}, Y: Fp{0xcc9603bb95ee3eb4, 0x69e001a27c6de2fb, 0x296c4c7c8205b118, 0x76db5433358b05ff}},
		{X: Fp{0x520eacf3ac17db6b, 0x975a1b6150124c4a, 0x9e64c3bd29c8cdba, 0xb3600ddfab985057}, Y: Fp{0xc847f19116ade32b, 0xeadb30ffc7d1d037, 0x89bb4ba4504df1de, 0x25e716e702f2dd36}},
		{X: Fp{0xd8f26a868965bdc4, 0x762695a55d13f2fc, 0x258e3a53e3794044, 0x3e9cbc15615eef09}, Y: Fp{0x690177f4b09c8098, 0x41c9335842e3d5e6, 0x785152708a2f5f75, 0x5a55181a258164fd}},
		{X: Fp{0x1b5f9cf20db3ed3b, 0x9dc721a03b1fec14, 0xb5022a9d9a4aa453, 0xb574ab780efb87fb}, Y: Fp{0xb172a8c7a2619692, 0x6d97075913464dea, 0xe897581ad86555bf, 0x0db88f0ae30d6f50}},
		{X: Fp{0x182119e323286860, 0xaf4d6d1fcfd5e80f, 0x1a0df5c696ee6d7f, 0x8c4f8f7707b4fd21}, Y: Fp{0x6db33e44f591fbf3, 0x5aa7cd32682b5595, 0xe5317a4a167bb146, 0x825c3946bf630329}},
		{X: Fp{0x8671f6e2763ab812, 0x92d74b27c850f2fc, 0x4708f5bafd3c8a72, 0x5c85bd6f9507f618}, Y: Fp{0xe6ce4849e57d665c, 0x48c3d365c400f7e8, 0x2563c3766fa68e70, 0x4e1aace7a4c329c4}},
		{X: Fp{0xb2fc568026c8517a, 0x99a271c1c3ebc24c, 0x9481b97df1988803, 0x3e3ec24df9790552}, Y: Fp{0x16e0fad187272b0c, 0x179f8012b1e1e202, 0x0347a83b02406bd4, 0x507d6b08b201a272}},
		{X: Fp{0xbb3a385bf68f9f57, 0x99269bb6c3e68c35, 0x4b7d0dcb1c6bc4e9, 0x62c87b8e9bc3b064}, Y: Fp{0x544e43b940432fe5, 0x010f69b1e7a80932, 0xfe7e4b8e98d11bb1, 0x602a7d5320be01ca}},
		{X: Fp{0xdf8f06f6e9b3c750, 0x022cf878d1083839, 0xdf1e5464928328d4, 0x9bfc01f67f43fb5d}, Y: Fp{0xb28214807edde807, 0xa2cc3293bae5edfc, 0xda7402ea5c3e034c, 0x4f704d30ea82baf6}},
		{X: Fp{0x80facc14bd677b26, 0x7b6fd7b7eb5de04b, 0xb9daf74f0d641e79, 0x266cadda0db82ddf}, Y: Fp{0x72c2dc652705c876, 0xa5e107d84ed14913, 0x471464b6373158e2, 0x66f2255884ee5d6e}},
		{X: Fp{0xdaa12f6ebc4cae5a, 0x4930c1fe956eb514, 0x1030ba5d36abfb59, 0x25d08e541d860b9f}, Y: Fp{0x9ca7b50a8ee1fd96, 0xbd54cf0a8226c87c, 0x5948b3a57caf6c67, 0xac38e5cd57a076c2}},
		{X: Fp{0x71b586fdb3ce5129, 0x3a7e6224b83e475a, 0xf6607a50df5a75df, 0x68d2c4b2b2e88aff}, Y: Fp{0x45305d68441e1dcc, 0x838f82dd1ec55104, 0x8c715c0923ee07ad, 0x8a408fc98f5282eb}},
		{X: Fp{0xef4db02593be724d, 0xaa4209c9489777ce, 0x58d6da28ee219eed, 0x89f4e77a1ac80452}, Y: Fp{0xf63fece635663911, 0xe826b0e7d261942d, 0x3f42181ad9b14c14, 0x4d72ed84a200dd44}},
		{X: Fp{0x6f148cce53fafbed, 0xc5d1a31cf383b777, 0x042065a42012ad02, 0x4bf59ffdcc428ae1}, Y: Fp{0x576f8dad5c7ed460, 0xeb53ddef68b18a06, 0xf9a7dd43dd3dddfe, 0x24f352b3fa6fbf48}},
		{X: Fp{0xb16b999ce9e24e3b, 0x53aa2ecc370a32f2, 0xaa42cbb5df60d68d, 0x387864c9d2a38248}, Y: Fp{0x25f992a0138ccded, 0x69070cc73228e5a8, 0xf67150cb13fcccfa, 0x81400948d5673708}},
		{X: Fp{0x9a8c549b38940df9, 0xfae197cd327918fa, 0xfb66eaf2704c4842, 0x5578085332392db1}, Y: Fp{0x2879dcd5f0338d3f, 0x6c79ae2dae198b4d, 0x95b7ca23fd6386f5, 0x40fdbfa695605531}},
		{X: Fp{0x726b28bd88706500, 0x735b8dfd5d76b847, 0xd4f3ed5a78f88f7b, 0xa8c1b7a9285e9a5e}, Y: Fp{0x1c1ee1ed63ea8b7a, 0x8767df7185f8ddfa, 0x93d469f7670e3555, 0x1b9053556f5a1d4e}},
		{X: Fp{0x185a0f803915fbde, 0xec78ffb30e07717d, 0x75d9b8488d1b9354, 0x7e3d5770a75539c5}, Y: Fp{0x3f135e2b0085ca76, 0x705c3f0628771fda, 0x324786b9efbd7676, 0x47b23932c6ae61cf}},
		{X: Fp{0xa0ffbce0a13c11a3, 0xd7a2b7710554fc30, 0x53e2e04bf7db767e, 0x54080594cc1d49fd}, Y: Fp{0xcf0353770930a75e, 0x39a5409f46e16daf, 0xfdb7811a8bcd7493, 0x32b0122f2f6e6c68}},
		{X: Fp{0xeea137f042db2afe, 0x190f956f60511263, 0x51b1f89c9a532290, 0x5e234ca1bf143047}, Y: Fp{0xe96eda155ce59e89, 0xb2a3ce0480ebc8c8, 0x640a5988cf585290, 0xa0480c200e9b35de}},
		{X: Fp{0x3316398802074328, 0x84cd91c91d1cedbc, 0xfdf7d3e719d68bb1, 0xae521fc88630d4eb}, Y: Fp{0xea1b43331f9ba3a0, 0x048756aa9ae67b0b, 0x4929dce0c90b4136, 0x9cde04fa7d9bd716}},
		{X: Fp{0x2f686ce58fd3d1d0, 0x14dd4b36f5fed372, 0x383d52d5f69a9333, 0x497b24315164ec17}, Y: Fp{0x4a9f3520ab023b3e, 0x07a337bba62c7d21, 0xeb82320855892002, 0x6039afd46c452676}},
		{X: Fp{0xcec2f55068874d36, 0x85cacae785276c85, 0xe422f850bd75d10c, 0x9927db534544ccb4}, Y: Fp{0x0bb91501bbaaa728, 0xa050a81603e10b09, 0x0ea5e575f30fd5c1, 0x48412528d27cba79}},
		{X: Fp{0x0358003d4098c2d3, 0xcd9801646ea8d735, 0x7de3f9478df56268, 0x20737cec4326c5d9}, Y: Fp{0x6e06692624b12371, 0xd81de6e788613542, 0xef11c76d021b363a, 0x0a9aecbcd05cc2ba}},
		{X: Fp{0x96785f4f7a09789d, 0xca257954f2f83d43, 0x40336727a3e962a5, 0x2db68782b053cfa1}, Y: Fp{0x9cc71f042751948f, 0x50cfd24ce67902b3, 0x44b64073907df3d9, 0x5d9f4fb8bc974176}},
		{X: Fp{0xb14edfefda615769, 0x472a807f7be8fc19, 0xc926d4c7c0571f35, 0x31bd8e78e36ca6e0}, Y: Fp{0x8cdcc53380fc5de7, 0x1556c8d8a4d33cc1, 0x7b833a565a2b781f, 0x4f232d174d51eb92}},
		{X: Fp{0x9b7168c3b10fc1bf, 0x203c1ddd19586f55, 0x1f1804d6be45986d, 0x1291ed9d16c3ddf8}, Y: Fp{0x289dfd1afc7fe334, 0x0f6a9318a6bc15b4, 0xe14a2cab19e2f466, 0x3829f4895cc50b03}},
		{X: Fp{0x131d0cfd2989ac82, 0x807639eaa5fe2e42, 0x03fc236e1e54430f, 0x2c936f7fcdf2a221}, Y: Fp{0x10ed7e5974ec31a5, 0x10d835b6a9054b15, 0xfcdeec145df2d227, 0x1b8c3c917fa72e55}},
		{X: Fp{0x2c158d986d6b7ee5, 0x549110ca9fb9538d, 0x3967744b4e573a34, 0x8741fe24274a28fe}, Y: Fp{0xd55eed6beb689300, 0x8b020d51628162c5, 0xc5da00ca4d398f6f, 0xa1646bdd5f5a5511}},
		{X: Fp{0x39802e1f30366e65, 0xccc1736cf93518cd, 0x81d3c58deff01297, 0x5504f631a176daf7}, Y: Fp{0xcb5ca5ad4cbfea24, 0xdde7267ad07a1a03, 0xf72bbd3f0abc8cc4, 0x30df4613c7992620}},
		{X: Fp{0x57780e9d9cf5100e, 0x749bc6bb329b04e5, 0x2ca064fdb1f0c51f, 0x19dcc8efe7710c8c}, Y: Fp{0x1ae4925eed3cc0ba, 0x0c873d33ab0e167a, 0x6539037d77b40fdf, 0xa4a51c7458458596}},
		{X: Fp{0x730aef0ebc3aac60, 0x69597d9ded828608, 0x832d2df3e833defe, 0x132f957f14b7002e}, Y: Fp{0xc08b5c61af1bb0d8, 0x8ccc9a981d3707e6, 0xec6a3c1cc50b0bea, 0x9235124d87dc51d5}},
		{X: Fp{0x7ffeefe42a4f595a, 0xd897daf6e9f71125, 0x89e86691d429b7c4, 0x6fe89c53839acd79}, Y: Fp{0x843828cbdc2ee542, 0x446ccb449c10a706, 0x0106ee12eaaf1cde, 0xb47cfcc9a48e7249}},
		{X: Fp{0x791bf2a91372c3c6, 0xd7313a95bb50cd63, 0xf72c6f0b33500439, 0xb439348f68b057e7}, Y: Fp{0x0ca5953002a1ec43, 0xbf16b7d1bd362e88, 0x0d06b98f57e0224f, 0x00b9e8d0e8dadcf3}},
		{X: Fp{0xd69471fe1e541c30, 0x6615c3eaec8cb413, 0x94fc3fe2cf25c3d4, 0x047c38475cb2cac7}, Y: Fp{0x994dbd39334a2e7e, 0x195f7fbbdc1b52f2, 0x222729bb4a9487c8, 0xb25f051f4992dbc6}},
		{X: Fp{0x9cf771cc075cfa9c, 0x160c399180962b92, 0x074bf7dc124a1e30, 0x025afc36f46063ee}, Y: Fp{0x820167788030094b, 0x3f5a1393b39ba8bb, 0xa90f526e00c5e0b0, 0x2aef79045bdbb84d}},
		{X: Fp{0x07f5a1bb130d5fe8, 0x68155b02d494e563, 0xd2903b29e9180bc6, 0x2a8b917d0bcc540e}, Y: Fp{0x84839b5433d0de8f, 0xc5626f599f81f2c8, 0xd594bff44338076c, 0x634aa07770ec7770}},
		{X: Fp{0xe02df947f614866e, 0x7acb7850d3384a79, 0x0710f5f075420a4a, 0x0b552c25bb53ff34}, Y: Fp{0x30cb2708b6d7f853, 0xc3ef9066be5839ff, 0x964778e87a8c308e, 0x408da20d6e125193}},
		{X: Fp{0x0c47222d9884f293, 0x67865f5c435bb3ab, 0xe52f34f1945d18f4, 0x5ecf5cfe99d1e742}, Y: Fp{0x81f5a8d942d584db, 0x71e0675ac38a6d99, 0x226087048285e1ac, 0x58c79848ca96f6da}},
		{X: Fp{0x7a716285aee0cb7e, 0xcfa41e64517a1bd5, 0xeb7f95bc07674349, 0x72b4048b758992cf}, Y: Fp{0x3c891925f533f3f6, 0x6190bece67011cf5, 0xccd6aa747e28db44, 0x3172b57835f871a1}},
		{X: Fp{0xd001a389c9bb1a47, 0xf8ba2c46776e03a9, 0x5a1a66130464c87b, 0xb37c7ba51c0ff3c9}, Y: Fp{0x230b1cbac0ccff0b, 0x3ce3ed7832b37820, 0x896e062e441af74f, 0x23fe547a3623545d}},
		{X: Fp{0x3eb089471f57e915, 0x0c2c9cd216c33a59, 0xb3ff5d74c78edbd2, 0x4ccdcf31b02528cf}, Y: Fp{0x61c543847140c4ba, 0x0b3389c9732b7423, 0x7e6c35c09890deb3, 0x528714bc60a4dec4}},
		{X: Fp{0xec679789a35987bf, 0x35272dcb7c35c9cf, 0x97984a9e5c6370fb, 0x78173afb38a3c07a}, Y: Fp{0xb63d0bcae91eb2a3, 0x11361dc19bd3e063, 0x13d27926ce1b68b8, 0x5a9b22c9fa2a5e2d}},
		{X: Fp{0xaeb40295473f423c, 0xda6378f4c86546a9, 0x9af4c0ba26a9a2e3, 0x6140624ae4294d89}, Y: Fp{0x77d93856fa699280, 0x292fd73f4316e9bd, 0xa76b5fab3440b82b, 0x0d9417ab887c69ff}},
		{X: Fp{0xb689d7b87b1b5b58, 0x45d2c0061c7d56de, 0x4365f842cf29a2d7, 0x338bb252ca0c99a8}, Y: Fp{0xcce6db99770b7490, 0xeeb4a98b4d43c66f, 0x1400cd4b2ac55892, 0xb5c6135b1b25d157}},
		{X: Fp{0x8bc5b1cda07961d6, 0x53292e61bdb97752, 0x74d78fa89100a7f9, 0x738664ffdc45153f}, Y: Fp{0xab046cd46ca211f8, 0x0e9e778f5e590f13, 0x708d8c3008cfa634, 0x8dc1e9b12b16949e}},
		{X: Fp{0xe8f177d1a3271c89, 0x6fe2daec60594ab3, 0x03dfe41811f99040, 0x97d0b4cef7c9bae5}, Y: Fp{0x8683ea7d1453029a, 0x2316f2587ccdc376, 0x10b13d482ac1afa9, 0xa198013a164df13b}},
		{X: Fp{0x70edfa9979dc0b1d, 0x57083a74111fe8fe, 0x7e175bcdb0e9e23e, 0x207b033c5cae8c6c}, Y: Fp{0x1899de9ae31198ba, 0xaf13b07f057321a9, 0x91f61d38c4828a37, 0x8e58f634836e97aa}},
		{X: Fp{0xd53a7f064e48e415, 0x6adc26a716aaa0f1, 0xc32e778bf054b498, 0xaa8f7338f396bef1}, Y: Fp{0xb7b7afa0711fb9ce, 0x1f04453096643a36, 0xff5f72a6e803e71d, 0x3fab2de5ded599ba}},
	},
	{ // i=34
		{X: Fp{0xd28b4a33cd7dc668, 0xa08f053aa58050d4, 0x5e3fd6c4501855e1, 0xa41e93a364d4ce93}, Y: Fp{0x735bc072cb855e20, 0xe67c0ce1fac121f8, 0x8d80469b4fcae715, 0xabe559411dccde81}},
		{X: Fp{0xe981f01af78139a9, 0x22314565a952bdb5, 0x2ce945ba1be05d6e, 0x1a992083ff28cc32}, Y: Fp{0xd903fa48510e210d, 0xadb20026e9ae6538, 0x182eb286bfd22a22, 0x689e91e35ae381c8}},
		{X: Fp{0x40b5378532184824, 0xcfcea68fc40d14f4, 0x77983ad95d169210, 0x7e5ea25e1af7eadd}, Y: Fp{0x7530c7b5bb32e8ee, 0x717ed6f57e96b0f2, 0x2e8ddd6094220749, 0x6e96d2420576065f}},
		{X: Fp{0x686d0e7aa5eeaadb, 0xef91f8474935c7f7, 0x828175fa5a6e1235, 0x418aff4c203d4194}, Y: Fp{0x66f430dc4bc3aa81, 0xe3a3b816d9976264, 0xa14ddc27ed538853, 0x7132687e288f97f2}},
		{X: Fp{0xfd4087cd95309b1b, 0x511deec5add3cce2, 0x086436327a913133, 0x5809f20f3e09d28c}, Y: Fp{0x89990ad36b34ed32, 0x97b901646af3b5f9, 0x70d49298a9b09d8a, 0x9a17493fafb79734}},
		{X: Fp{0xb5477ec1c11d908d, 0x6f1586f6d6ba10d4, 0x71d288520d5dd1dc, 0x66b8419099409375}, Y: Fp{0x7dd2aa1aefd34719, 0xd9afba1f5b5f5d15, 0x7b1154d7f5fcebe2, 0x909be29d6f4bc37d}},
		{X: Fp{0xa03d4f53eb408c42, 0x90cab8e911879888, 0xfd4e52fd265b8bd9, 0x4bf90f053097aad6}, Y: Fp{0xb6304fce62a2e837, 0x30e3b2b2f9eb6fca, 0x2e3cc7a708b75e4e, 0xa76680c39cf25473}},
		{X: Fp{0xeffdc9f574eef6ac, 0x6431b0ea38edefe8, 0x0813b4e78cd7983e, 0x1bd77142c36c42d0}, Y: Fp{0xd6d20dc3ced34d95, 0xce0d26e26aa59b2f, 0xd1e86d106eacd5a2, 0x2ceb06d30dbad339}},
		{X: Fp{0xc154902b8e861126, 0x3264cb234ebc02f0, 0x7cbdb32466c50ba1, 0x6ae0ae2151869dae}, Y: Fp{0x9965edc849b5c0b9, 0x5220bb03677f3d42, 0x551938137b497153, 0x1288349c905d43f5}},
		{X: Fp{0xb23d196c03058e73, 0x1d1760172a9c24af, 0xe7f69550f8299e1b, 0x1c5f7a6a5744a8e0}, Y: Fp{0x55f3181cb1bdbae3, 0x9bbecec84380da9f, 0xf7f87df5373917ef, 0x2eff12c6f6213a23}},
		{X: Fp{0x1e8b03d68df76853, 0x9cf2162e2a3ab187, 0x028cd781dc80e6dd, 0x8c4c0b7902add83a}, Y: Fp{0xc67987a717882db4, 0xf3f024f5d99c09c5, 0x50e2be8f23f243de, 0xa6921355151850c0}},
		{X: Fp{0x012e856c8e7d1cff, 0x5de0c56d5e75fcc6, 0x434ee3ec8a5c11f4, 0x975bb93015db41fc}, Y: Fp{0x2a0bca050b4a6fbc, 0x96c1a2b8d74aeb12, 0x99ddd06c761a18fa, 0x8d884380f9b22417}},
		{X: Fp{0xe8594d05c910498e, 0xa1e85783474fbc20, 0x681395f2b6085e70, 0xaec80952ec41bc1b}, Y: Fp{0xa82b8bd891be15ca, 0xa57a6035fa75e850, 0x56e522df1179f9d7, 0x08e48e83a5f816cb}},
		{X: Fp{0x522cf97ca1099acf, 0x942859e72c35ffe9, 0x2b29ca3ebdce6041, 0x2ccae6ede1bba45d}, Y: Fp{0x4463c11bb9938ecd, 0x646cf4e65da4352f, 0xf5cd3ab97d096dda, 0x97d5eed0c69dd8f8}},
		{X: Fp{0xef68ee8237daedad, 0x69ffdf3b46344740, 0x64537f0f21bcbfa1, 0x7e5c6b9fe98002e9}, Y: Fp{0x6a5ebd63028eff54, 0xbc91fe322a5b6eb0, 0x364643d449420112, 0x5a4d4c61c703e313}},
		{X: Fp{0xa09bfed2bdd8c556, 0x74420350681f8226, 0x4bf0bf35b29c315c, 0xa940d43bcdd7b4be}, Y: Fp{0x6e5b267a1c1f8357, 0xbbc3dc83300d64b4, 0x9826ae7db864f2d4, 0x67d514afc3105ed1}},
		{X: Fp{0x71f5946a9bfd369a, 0xfe080299d6ebefe7, 0x5009d6fe9c0b94a8, 0x8c08a9c24d853535}, Y: Fp{0xe9c7ac405993842b, 0xdb7784462c4a7d0b, 0x819fcdf6afedcf80, 0x9f3c3049c3b24c22}},
		{X: Fp{0x80e74845c28d6cdf, 0xa524a5c921a63046, 0xba1f51c831115a1a, 0x4f33aee7ada79c44}, Y: Fp{0xb982a3a9a938dc01, 0xa1e76c0cd72cdb33, 0xfe768428f4465ff5, 0x1b70ae0de4a11cd6}},
		{X: Fp{0xb16f1f6364d97202, 0xc6d1d090deed78eb, 0x3b7a04220acaae67, 0x7117f1578fba32b5}, Y: Fp{0x4552dfb6369729bb, 0x10a180ef99f71bde, 0xaff3c43d3fe8c52d, 0x01db93c8c6ad4d6b}},
		{X: Fp{0xf7ab1c0522ad38eb, 0x212e5d71118a1cae, 0x6e171d9203b0139f, 0x2717cc0a1d61739f}, Y: Fp{0x4f99b5aba1cc4118, 0x745836e1b06dd46f, 0x828220e7576688ae, 0x68281104809645bc}},
		{X: Fp{0x703318658817fe56, 0x21792632f2a2dc2c, 0xc18506296ced1116, 0x7e7c7bf0da5fd4a9}, Y: Fp{0xbd4e8dd31a1e23ec, 0x3214740416a2bd7f, 0x92252c499b18df42, 0x54e396df8ba65ec4}},
		{X: Fp{0x840f5dee63a5032c, 0xe028d7eb3641893e, 0x7586d93c6d7ac271, 0x55edbefbce49bd0f}, Y: Fp{0x0c8217bc84605c13, 0xebac5f6da6e566b7, 0x233476d09f2fca00, 0x929fa586df6d15c4}},
		{X: Fp{0x77d27926e3d9ad5e, 0xf0d7de8358bce38e, 0x0efe0220c437bbb5, 0x79573a60365bd71c}, Y: Fp{0x5aac43c8b0727c3e, 0xdbdb88c29d26f84f, 0xe511dbb669cd0613, 0xa621b88473f8fcc1}},
		{X: Fp{0x387a1ba6079cafed, 0x4d42bedb93e7c03a, 0x16d39d8ecb76d37f, 0x46a59989aba673bd}, Y: Fp{0x32fad615e3319a29, 0x7b500376fe3277df, 0xa63cbfa974b978db, 0x251cf4b0628dbcdb}},
		{X: Fp{0x6306029d72199996, 0x5d252269fb3b6f91, 0xdd00f99c01065759, 0x04ce53d372854c9b}, Y: Fp{0x400479c4e6751357, 0x01d0b477f52c8342, 0xe72578a7e3e1d7b6, 0x10a9f322ea198e76}},
		{X: Fp{0x60f199eeb53ecd1e, 0x2a15bae9fe9e7514, 0x8da09fa2d38671bf, 0x44994cfe4a46034b}, Y: Fp{0x5a2fec52963daa21, 0x842dcd1276f1ec2c, 0xbb7428b1a0c23c13, 0x07864e899c8efe78}},
		{X: Fp{0xd58b5b05d7ef38a6, 0x88a75da3b3afa847, 0xd0000eb62f620ef7, 0x48f5bdbe97cc4cf3}, Y: Fp{0x82b347cad212a38f, 0x6c54fd87f8205efe, 0xcd7979bb1ba5555d, 0x3004fa7155b61234}},
		{X: Fp{0x1ab4bb8b96cf3d99, 0x290ef410627ed749, 0x4a1a8e1bb2925f2d, 0x258244c4e157ce2c}, Y: Fp{0x40fcb88501eef94d, 0x12cd61377ad5f5ea, 0xe4e2a3089f924851, 0x1c8d69fbac604ba8}},
		{X: Fp{0x966ee047a9580514, 0x669d1403a55c5b56, 0x6926a11c16963f1d, 0x5d95a72c628aa935}, Y: Fp{0x36d522687b6dd787, 0x73f09b3c131069de, 0x6bb8a988650f8599, 0x2e3a65087d0dd5d4}},
		{X: Fp{0x840e3e2c3080c1f6, 0xc4e5e0aa78a9fdb6, 0x5669bf6ae274877e, 0x0e5980f1d93c615e}, Y: Fp{0xfb88531b87e212e2, 0xc8416f41f985dc28, 0x5a478c512f227866, 0x576c3375a01fddca}},
		{X: Fp{0x03f8b1226eff7740, 0x3d71211a7e027159, 0xd3840d8277b7ab60, 0xa4634c0dc7584170}, Y: Fp{0x0458664cb77151df, 0xbfffa39a010a4c66, 0x80ae25c93c8dd688, 0x8d9a8b27cf8be2bb}},
		{X: Fp{0x7d29274750deb896, 0xeeebb6051e20a5c8, 0x003c425be65faeb8, 0x2f41053f5079ff3e}, Y: Fp{0x9b62949bd6aa510b, 0x8817356a89502994, 0xc39445a55533db5d, 0xa4427942563c557b}},
		{X: Fp{0x31675dbd5437657e, 0x714af4510370c91a, 0x4611233090732d74, 0x176162867571f1b6}, Y: Fp{0x29dcdc95dba1d15d, 0xb28e0f64e3603ae6, 0xc665f3b2194c5181, 0x77ce8c1d24f3fc1c}},
		{X: Fp{0x2a72f698c562e9c1, 0xd0bad8981f4efaf6, 0x6bebbaf6d1b353b1, 0x72bfa03a7411be8b}, Y: Fp{0xbd21b69c4d5a8828, 0xee61592e4eed38d9, 0x7e6202b91ca8905d, 0x0497ec91af7153d9}},
		{X: Fp{0xf4920b70a3697eeb, 0x3c099d8e9780033b, 0x6c917b296cc3a108, 0x422d36a09ef6a861}, Y: Fp{0xa5ea057744805fcc, 0xc491ea4c33951674, 0xe01e354f78a19101, 0x0b20925be39c43b7}},
		{X: Fp{0x2549954fd0b50270, 0x78ef9be5adc98270, 0x7b7685ac7a653f46, 0x53e6cefe22314f23}, Y: Fp{0x063a72dd2feb719d, 0x434cb11268967f73, 0xf791343fc7d0ae84, 0xa8ded157bfcc2824}},
		{X: Fp{0xf428e241fdaaf2e2, 0xeeea46a3e9398ac3, 0x296cc7e47282884b, 0x84772b8cf15768e6}, Y: Fp{0x18c1aaee006195b4, 0xa4777485b5e0c1e7, 0x5fbd42cac1dfb260, 0x27bfbb76f131c6f2}},
		{X: Fp{0x7b2160cbbbefca13, 0xd33dfa12ffe37dcb, 0x1049b5de32d80cb7, 0x57b69bf189e04b2b}, Y: Fp{0x4ddcbb8f18fec25e, 0xd8458ae5c29dfa58, 0xe304a24985e015e2, 0x029fd8054bf9af67}},
		{X: Fp{0x5e0b30e4f34fc4d1, 0xc6ceaef4ca602696, 0xaa0edc896a796301, 0x51287f9f212c9ef4}, Y: Fp{0x83b5a9cfce525ec5, 0x9b51f472d5182cb0, 0x4c017468b46f5f76, 0x61faa7cea9f80ddc}},
		{X: Fp{0x4cdd038469ab696e, 0xc3f8d7ce881cb27b, 0xe22480478b26119b, 0x9f37fc05450f5977}, Y: Fp{0x123ef8cc2eca68f4, 0x313ff15c5d0915da, 0x8870d312dfa5fc72, 0x7fbf10c3442d8d1d}},
		{X: Fp{0x647a7be467a90ccc, 0x42473fd1c396e9aa, 0x89d1b1ca81927771, 0x72a4e5d6a6a6ede6}, Y: Fp{0x39498eae1546757a, 0xe8b41b028de082c3, 0xf365d379ee852486, 0x24e8f1caffbb6a5a}},
		{X: Fp{0x60e02d0c6e1b615e, 0xc1f862dd8d696930, 0xd31e3f9335d5bea9, 0x2231c4c0b561d61a}, Y: Fp{0xf4e114c659b4a9e8, 0xe323a7052a3ce606, 0x88a0253081c547f4, 0x6301c344458dbdfb}},
		{X: Fp{0x9a65245c810fee79, 0xaecd5670d18227f9, 0x32f7c596931386a0, 0xabf668487d382c7d}, Y: Fp{0xda84b02389e69e18, 0xb2ebfad8744150a6, 0xcb8d261250e9e6c8, 0x9a2bf3beca1de227}},
		{X: Fp{0xb1dac5f7431e66ac, 0x18ab3e6e79d27613, 0x4c85382b4a07d623, 0x757417c40813d49f}, Y: Fp{0x062036e5bbbf86a7, 0x0ccf1d8d45c428b6, 0xf8b3ed8865c8dc1f, 0x03a976c92f4f7ee0}},
		{X: Fp{0xd477d602397c56ff, 0x1aaa45f90be4d10d, 0x98024a8f16560c97, 0x1292735819fc4e4d}, Y: Fp{0x39b14bbe8c67a137, 0x943b1ae98d197586, 0xd49862c9bd74c104, 0x5d4ddb6494b4ef2c}},
		{X: Fp{0x6b1efb98aec59b30, 0xff1a4a216f880aed, 0xce585cdebab5a926, 0x4f99550c247318a7}, Y: Fp{0x835a9e78e57e5129, 0x435eea4763cffbe3, 0x9572705ebd2d3d82, 0x60cf2d50e40091f0}},
		{X: Fp{0x6c084aef20992da9, 0x6eaf3b81cd0ff91f, 0xc280518d5e36bc6f, 0x5cb59b3747a044fd}, Y: Fp{0xa89f9c123c37c3c9, 0x2ed766590f316ec2, 0x1605f057e773daba, 0x50392b4ba2254b83}},
		{X: Fp{0x227476da90c5ad9a, 0xcff578043074624b, 0x64152ae90fa72895, 0xa62a7011f0b64c33}, Y: Fp{0xaf3ebbb657f50b43, 0xcf47d4fa7a2bf491, 0xc3a163a91a44a0fb, 0x656f0a8ebeecc289}},
		{X: Fp{0x59a34612651d2af2, 0x3ed9a83f77837aad, 0xce831e88178da187, 0x732320312d4ea81f}, Y: Fp{0x653ffc59b7823289, 0x1e531b14ac544280, 0x0e9e4853ac3db226, 0x9b69cfef1244a759}},
		{X: Fp{0x631232c4ac3e3780, 0x22ace2afdca458a8, 0xe13fa75f0840aa4d, 0x98f39aff7f26edde}, Y: Fp{0x9e5b74d2e3c84854, 0xda4eb1dc66d4d22c, 0x63d7780f6ac8439c, 0x15ac95ece6535a9f}},
		{X: Fp{0x097cb2e118753076, 0x460529cbeb392b09, 0x51590858f3575456, 0x5cd2906ca6fea4a9}, Y: Fp{0xd9fcb265c8949512, 0x8757c4ba7c9bd4f0, 0x74e253d593b8ddfc, 0x77dcbda2f2e86625}},
		{X: Fp{0x18f1f6a5979de8c5, 0x57d97e2781f8a86e, 0xf5e4deeda09806b2, 0x749ad6da15fa5dd3}, Y: Fp{0x0e9306b45ece01d8, 0x9e8ebbb75391975d, 0xa7b31c716c37e5fd, 0x5f6a24af4565370c}},
		{X: Fp{0x56a85dde1c939ece, 0x8066112db9709425, 0x0a8b09909ee158ea, 0x5c2cf0ed7a538ab5}, Y: Fp{0x928cb4bf1548bcfa, 0xc2a485b13b8797c7, 0xf8ac10d86c716969, 0x22ea18373210e89b}},
		{X: Fp{0x3e903944d505daf3, 0x399621081ad04f1d, 0x429932e3d4f7111f, 0x56c88d217b704f53}, Y: Fp{0xee8686f6655856b4, 0x15763ce08e482249, 0x30402ac4d718095b, 0x948a26913c5098b0}},
		{X: Fp{0xf8bcc1f22ca77c6f, 0x6d2470c864c4dff8, 0x164bafeb4abbbd03, 0x499af84a888cda09}, Y: Fp{0x972b810654d6db6d, 0xe9bd486d99f4ec8b, 0xd77f5f112cc05a3e, 0xb1334e47fa27c0ab}},
		{X: Fp{0x2ecd3d1128ab88f4, 0x9e6656ce07ff6dc9, 0x0adba37d126153c2, 0xa36b68fbe7f517b5}, Y: Fp{0x15e564f60e2bcf63, 0x05669b78c979810c, 0x5c79eafae674c992, 0x717e95ec123a38b4}},
		{X: Fp{0x91671eebc994a0b9, 0x7cbb24e932e21101, 0x3cf3be084378c57a, 0x8c60eb657003d806}, Y: Fp{0xcf092fbd396b5232, 0x430e383ed26a5ec2, 0x6fc6a9655180d3ac, 0x1ca437823ad0d525}},
		{X: Fp{0x7767da3a367037e1, 0xa94d871ab401d70b, 0x5171f00aae6aac32, 0x2ea21df84c54bfdf}, Y: Fp{0x814b6220ae94a6d8, 0x17cda7e638699ac9, 0x3a9d6e3edba814c7, 0x373461815e51e828}},
		{X: Fp{0x173808b3da9fd2ca, 0xc1b42a4ee8d0bc53, 0xbea5c31f036ed004, 0x1a4c0b991eb5ef2e}, Y: Fp{0xc053a02b8ef55c29, 0xf1366c1e299de729, 0xfdce4a0cf6e52099, 0x4734763ce5fabeae}},
		{X: Fp{0x89d7bf6ff4309c9c, 0x4c5e50e35f26a9bd, 0x109cc2630ae0b01f, 0x5d85c790e8f2f452}, Y: Fp{0xd89879a5f0cc10ec, 0x924d39353b42536a, 0x38363ed20a76e031, 0x37191eeaa8572713}},
		{X: Fp{0xd4e40b0a9835e993, 0xc6907d83b6257521, 0x64d9c849b2745492, 0x50dbfa704536ed08}, Y: Fp{0x3928d350fcc5f790, 0x045b3c157b72e1ec, 0x1a3c29130284c989, 0x83d387575d1af652}},
		{X: Fp{0x32ed885e94540008, 0x2f1184912a61203a, 0x62757bab35ee1171, 0x3eb7666aeffa5e61}, Y: Fp{0x25e8a5b76d0c0065, 0x883f58c53a683d06, 0x2482913436f099cc, 0x3c81f00ddf5bb67f}},
		{X: Fp{0x1bff68c35c2b0702, 0x660dd9785972a928, 0xa82cf7f7b21ae1e5, 0x8aa4248bb00450af}, Y: Fp{0x9a7e471fe6987002, 0xaf63be779171ecc0, 0xcc12506f75305f07, 0x5e635bcf8b20ac36}},
		{X: Fp{0x8178137ebcdfa80d, 0x2f648bef84403d3a, 0xd5d19e142c9ca6bb, 0x8dffe3f7e13648ee}, Y: Fp{0x8d49d22e38545b5f, 0x1b51ebdbd3448157, 0x77dae397c52437ba, 0x170401c7795fbf13}},
	},
	{ // i=35
		{X: Fp{0x6453aa5338a13f58, 0xff4d9df9bfdbe77c, 0xf173b1f5c98dc8af, 0xacc737accd93b975}, Y: Fp{0x9e15692ddf1721dd, 0xa816d6e1249ec6b5, 0x86e0e306f775f027, 0xa7cf83e7dbbbe116}},
		{X: Fp{0x4ec0374953548d39, 0x72909f147f68cc08, 0x55c3f5fa983999f8, 0x60b5c2411e771209}, Y: Fp{0xbf7cd2186aa63497, 0xba79412af80e5dcd, 0x8171118c6236191e, 0x2e06f1ee4ac7deac}},
		{X: Fp{0x98a5bc0ad352ba98, 0x3beb6c10c3de000e, 0x159554d28c2b905f, 0x3933d6cfac5b3abe}, Y: Fp{0xc0cb745eebd72324, 0xc72a98942c15bdbb, 0x0dedd9da0abd9e07, 0x0ea630031bf69ac3}},
		{X: Fp{0x6c439cfbba65acd5, 0x61768af854b1d13e, 0x025554ed9fd30e97, 0xaec4e1a62d894635}, Y: Fp{0x130309546d85a0d4, 0xc0179d9d679a7d25, 0xf2e48b490226ead4, 0x705af631201f45f2}},
		{X: Fp{0xdd823bc903820700, 0xcdee1a235ec3c76a, 0x934c2e1a1b03bd33, 0x0940086b3553e268}, Y: Fp{0xb32c6e44db5038b7, 0x8ae0cd3ee9feb528, 0xc17f0fa7ec882d10, 0xa87a99227b238572}},
		{X: Fp{0x207261a00b316236, 0xcf38defebfa4e3f5, 0xf9aa1f1b62058fb2, 0xa68d5df1c5217f15}, Y: Fp{0xe2b67a67ae5ba615, 0xc85b8bbee4a9087b, 0x22a8b3e49af11cbd, 0x113b4f6adcfd6f48}},
		{X: Fp{0x21738cfe78f883f3, 0xd18345de70aba56e, 0xe30e37af8d843f86, 0x95e70895f1edaf6e}, Y: Fp{0x53c355ecbd6e3058, 0xa33bbbbbfabe287f, 0xdb54fdb6148da2e3, 0x46c3a33d26675abc}},
		{X: Fp{0x92710020db65da39, 0x528a159bc4fcf86a, 0x1e61ab9fac7cf0a4, 0x3cd464b5429acf95}, Y: Fp{0x8502c14939ffd872, 0x644fa30fc743471f, 0x46e548b103a940b9, 0xb31f5a00c2dc5727}},
		{X: Fp{0xc79789b229b2d1c3, 0xa7d49ae57d51c1d6, 0xf940c01f088fae29, 0xa9b86e795cd4e0f5}, Y: Fp{0x2c97d787471ff98f, 0xe0c7c6ddb3efd85d, 0x5014371f1174fe8c, 0x5b7637ceb9471831}},
		{X: Fp{0x5a80a363492b0475, 0x4c8d6ae168138b60, 0x475ec4578674fa71, 0x6161922076b5efb4}, Y: Fp{0xfd1e2baa48cdd373, 0xf859cc181a0a393f, 0x1969262bef7ee42c, 0x62ac9e7a7a11bbbf}},
		{X: Fp{0x0a4c68a9095f049f, 0x8cae730552992c93, 0x1b210b23c1aed0c9, 0x3ea1edcceee29cff}, Y: Fp{0x899c1203dca97328, 0x235fa764673313f7, 0xe057c2acbba756e6, 0xa47121f33afac54a}},
		{X: Fp{0xb50212b670ecb5c7, 0x7afd8cde01245d60, 0x96e93d0dcba16bad, 0x11973aded762e096}, Y: Fp{0x1b7ce5480cb54ad1, 0x2c7a51f091894323, 0xce246ef343f6e025, 0x872cc9fc8c654e10}},
		{X: Fp{0xda9f1bac6ca1dd8f, 0x6c8515cfc461ca30, 0xd1964788e6032605, 0x6d909ab68ce337be}, Y: Fp{0x72bc38d779b592db, 0xc26d944b601afddf, 0xaf109928a8b81d8c, 0x3a6ae1cc825412b1}},
		{X: Fp{0x8a4af1e724cb4e23, 0x68652c5c29080212, 0xb33cdcc86ffad4a8, 0x7f8812fe0e2707be}, Y: Fp{0x3e1826bca99c8886, 0xa4c669092592272b, 0xea83eabe8f640bbd, 0x54adbe72b5a9ee13}},
		{X: Fp{0x9b1d42e8229d914c, 0x9a1d91645f5f3f16, 0xc2f695ef7c247304, 0xa9d68bf8a5a43187}, Y: Fp{0x2738107ba9c0eea7, 0xdd1289dd82034068, 0x86856786d8a925b8, 0x8e158427d88f6cd1}},
		{X: Fp{0xd103f525daba0410, 0x02ab502fe894a6d2, 0x4f4ba6efe838aa39, 0x4490f7acaa11f543}, Y: Fp{0xc0e85f0ccb9e80ac, 0x9935482b86aa4a23, 0x104d1e5255f67563, 0x0f3ebeef0611ea9a}},
		{X: Fp{0xb0bfc1939f4af0e8, 0x1ffe3757271e3bbf, 0xbea3485c790d6198, 0x8aa086e2f58d6c65}, Y: Fp{0x43d48d24c012cbbb, 0xd3ac9c9f7ca9b22c, 0xb67da1b9a05a41e9, 0xabdeb8edd98ef315}},
		{X: Fp{0xfd10c3b95cca4103, 0x3b6003323b848bf6, 0x78f820d3a6485800, 0x54bc82c7cfe9586a}, Y: Fp{0xda89aa5411d3a0a9, 0x6c15c9a21facd757, 0x357d0fdea9a90c36, 0x1fd934aff9b6ef50}},
		{X: Fp{0xbd9e7b3c3aaa2d83, 0x52bddcf0159763fe, 0x2cdd4a647c2f9583, 0x43efae505f1a4ef8}, Y: Fp{0xc6727bbbaccfa3f7, 0x6b5d8854b42eb3cc, 0x1833c3bfc331d5c2, 0x73833860e5864fdf}},
		{X: Fp{0x7c5919814a93d9a0, 0x72873847469e02cb, 0x09b8e38c2a0a7ec9, 0x8e4b4da0eb24adaf}, Y: Fp{0xed97032045420d7c, 0x4f61d60b37aa6781, 0x6530564306c0eecf, 0xa7a81a336d9ea0c2}},
		{X: Fp{0x16436169b648ff5f, 0x0bb415fce6ed28a1, 0x1043293a0a5c93d2, 0x4ab5eb7e158582e1}, Y: Fp{0x434b64ad60270a70, 0xad9451bd0d9dd313, 0x8b87431e5be7bf6b, 0x24327412787734a7}},
		{X: Fp{0x9a7051da04e65082, 0x3f1e06a15ff63637, 0x5516bb51ecf2d9da, 0x708da4d877c62b6d}, Y: Fp{0x0c8ae49ff2b4223c, 0x73adde9ffac1a3c0, 0x40a8055555956ed2, 0x0182583a04da6e52}},
		{X: Fp{0x092e6ca4383cb000, 0x432269f297391c82, 0x0a1f8393c2eb7fb3, 0x536fed724d445eb0}, Y: Fp{0x56d48a3b0a741cd3, 0x82830b7bc4b31e3a, 0xfff90bfb483b568a, 0x39c5d80e3e95b87a}},
		{X: Fp{0x4115e58a1b55ee54, 0x11d31fc130954079, 0x7ea10151a555bd67, 0x4ba96707dcae181f}, Y: Fp{0xe25aeb1571d2ff13, 0x8f70629e9357809f, 0x1ff35e9d8c74d477, 0x4d89ad7b0c0b1180}},
		{X: Fp{0x64bf6e2b8f0039a5, 0x24dc99dea8581ad3, 0xd25691e1b74b0a70, 0x6d515cfe8aa414d9}, Y: Fp{0x733fb24fc1c3650c, 0x856d322317038fa1, 0x9bebee81333f2b93, 0x43a2de7ad3366670}},
		{X: Fp{0x55ae677f9613857b, 0xb1f198631faeaaa2, 0xc451d81414534e26, 0xb2914a8fc2ef5e79}, Y: Fp{0x703b58fcf8c2402c, 0x78af0187dd57ca1f, 0xe1ad6474e925d1b8, 0x7fab8a06665c151f}},
		{X: Fp{0xfa8e2c94f90606d9, 0xc47b890e4db9d559, 0xd9309d87835d725a, 0x1dbb0a9c99cab1ac}, Y: Fp{0x9c63a87772d6ef67, 0xa2bcf4e086f8c512, 0x751dc59fce842762, 0x76460a6c5847fc85}},
		{X: Fp{0xdb65c530fe572abd, 0x47cb32012dc8b6e5, 0xbb6c75c6e6e564ce, 0x045ab7169221dee1}, Y: Fp{0x0cc46a455d459539, 0x9984f17f6025c7de, 0x85e5839f4df1304e, 0x911f1f3f614039c0}},
		{X: Fp{0x25b91b330709a525, 0x6d9103d32d625585, 0x19c5576351a1abbd, 0x2f74cee2cb62c599}, Y: Fp{0xd2cac17a4dc070ec, 0x31a01b6499432420, 0x5e27cd90afdfc39f, 0x66678e22b8d3466d}},
		{X: Fp{0x66c050a0d9dde0d4, 0x494acf57122c3be0, 0xff13e9757241e10e, 0x2cbeba14a88fac7c}, Y: Fp{0x72338145b7cff47e, 0xa004e0df3c01d271, 0xac4c23a40afcd018, 0x25d63ddd9219a8a8}},
		{X: Fp{0x7d40df616e64a90e, 0x4122a426902e7d29, 0x4542bb551a7e1d50, 0xa96039abab86436b}, Y: Fp{0x516adbd116c9a1cc, 0x5eca474602f1531a, 0x1b9ec5f6fa975bbe, 0x97b187ec28f89370}},
		{X: Fp{0xdb94e59202c75fa9, 0x248c2ec4f2192d82, 0x980cb7f5fae438f4, 0x391c28da6c6e99d4}, Y: Fp{0x4f7b7a4c213170df, 0xa54b9db7266e98b6, 0xfa7e43925b2b3655, 0xa4b9ccee3cd5abed}},
		{X: Fp{0x21a082dea63f3a05, 0xa147a4fea34c6bcb, 0x11b1f3dcb14dbcf4, 0x44fb3a86db5017f7}, Y: Fp{0x0b5b6961fac5d105, 0x6fb550ff1e1e0cab, 0x690006dfe44bf032, 0x260739179b518357}},
		{X: Fp{0x721916fed1da8e71, 0x0d255c0347786858, 0x52c0cfca68d819de, 0x05f0b1ed54696d15}, Y: Fp{0xcb5db5ff03c3bb42, 0x826b27ead18126b5, 0xc766f893073ad0a2, 0x12337b9a8736e7d4}},
		{X: Fp{0x81a57713781a7ee1, 0x2dccf47995c218d3, 0xa65f95d7b014e320, 0x61e7193925cf5d28}, Y: Fp{0x4a4be34b0096f1d0, 0x6c9752fa69fbe7b4, 0x7497b900e7d0724c, 0x04cbfb97d06c5976}},
		{X: Fp{0x443bb3596c6766b3, 0x103a1eb1391de6b0, 0x5d126c2de3cbc2b5, 0xa9c0cc0cf892b982}, Y: Fp{0x2f4b1d17e70d6540, 0xca19b68cadd6cbc3, 0x9dddbac9c0919731, 0xa04986a34ee185ac}},
		{X: Fp{0xfed9e6264f995d2b, 0x3c87e350b6129609, 0x248ca1e66c545c5c, 0x0c2941ca23a386a2}, Y: Fp{0xf08005a708cc4141, 0x44ba751739ed289b, 0x27fa307af31bc59c, 0x7690c2c66ab5a770}},
		{X: Fp{0x8f512bad7731aec3, 0xe2c192a6316281ff, 0xadf40bc0cfd27022, 0x775c95d1ee83fc2f}, Y: Fp{0x24c5b1ec5a7fd56b, 0x5df373a538a8ccae, 0xa1c1755da336e1cc, 0x594f1043b0cb2406}},
		{X: Fp{0xb2a958eeedb8bb95, 0x6fd707d82860a0be, 0x8c256868b6c98536, 0x7db9dc8d84e4f02b}, Y: Fp{0x666497e94c5d9378, 0x5deca0f256b5e6e8, 0x2a9eebe9f6223010, 0x6420b6ab175fbc90}},
		{X: Fp{0xb08ff855d431e790, 0x0c5d992901f40567, 0xd6384836b63c01fe, 0x18d8b8f0d7f037d8}, Y: Fp{0xed09a637957efa76, 0x61994ea565ebaa9c, 0xfdfb48b8ea967712, 0xb04b775f30006ae8}},
		{X: Fp{0x427326526f31c402, 0xd515d477f11c59ab, 0x4e598a43bdb3a51b, 0x96b7ca73c4e15162}, Y: Fp{0xce52252259ec59b8, 0x6729ebb753ad39de, 0x4a24e6925d262a90, 0xae727890c08ace21}},
		{X: Fp{0x565cc17fce3c3ce6, 0xfad342625ba0cfea, 0x3ab66a00834b865f, 0x9250ce4396aba4e4}, Y: Fp{0xf7feb8ef15642159, 0x7fac4d679aa4af6c, 0x67b53ef72d4e54a4, 0x4ec9f72bfe76b083}},
		{X: Fp{0x5080bec404aaa113, 0x6dcb555c3891a849, 0x91d5fe985b8830fc, 0x36a78c91a14eeab8}, Y: Fp{0xcc4886720e2f94b1, 0xa3198487a73f9aa8, 0x9e65d2927b7d39e1, 0x3c69923b7defd7eb}},
		{X: Fp{0x871f5eddca530404, 0x05934ff4f68c5bb5, 0xdaed07855f0afd50, 0x9a5c7895ab13bc79}, Y: Fp{0x58755500379591cd, 0x5ab9021ef1dc1385, 0x3553065fcba98cc4, 0x3ed4bd1b8574e50b}},
		{X: Fp{0xfd175ec0ff9791ab, 0x948f5fbcc0378019, 0xa42b02d6ce1899ec, 0x6f1bce43d2096fb2}, Y: Fp{0xeab2018935619211, 0x27d176719c27fcbc, 0x888c4d4d3f31a3e1, 0x6ff2e780d6d07908}},
		{X: Fp{0xa4b7b1bca8a9ce8c, 0x363dff3b3b5f8891, 0x664801e55917ea46, 0xa9b9317319ec864c}, Y: Fp{0x1047cb9d402c786e, 0xc4bef89fd6762b7f, 0x66f0f92ca552afbd, 0x9df31175c215e27a}},
		{X: Fp{0xdab085c7146c80c1, 0x67128baa80af3b69, 0xf30c4202e0db45fc, 0x7c57448ffffce3cc}, Y: Fp{0xbe3d2f25a2215f59, 0x9391d29790ef65b5, 0x2851f14e3504beab, 0x5d2fae1106bd658a}},
		{X: Fp{0x010e63343dac6b1a, 0x75f92ec08dfae816, 0xff0d978421db0c0f, 0x784d43e7ecc63402}, Y: Fp{0xee13c570f1b56afc, 0xbba8c4bf746c35e5, 0x78f693e721e06052, 0x407d38bd92c10df0}},
		{X: Fp{0xdbeff6aa4cc8680c, 0x45787dc6cc1a1a95, 0xb870a629f0d38af9, 0x0cab8e0f57ea7edf}, Y: Fp{0x8d5a79605116898b, 0x7f0450d96a8f3f57, 0x2f0e5940172a5163, 0x1b4247f3f37a88ad}},
		{X: Fp{0xaf1a8fe4778a67db, 0x4632c6ece4ef9b50, 0x89c1c9519c21eda1, 0x80d74b8e071433ca}, Y: Fp{0x6afad3bf40570949, 0x1449cb511f47c7a8, 0x259132ab7bbfd8a9, 0x3af959ccce6f230b}},
		{X: Fp{0xf0ff61a0360fb77a, 0x68796ef6a296e4b6, 0x2190be8af0553311, 0x60f400e8686e88ee}, Y: Fp{0x72aa14e7543f4b0f, 0x040f330f71cd2881, 0x99ab4cb1e226e7cf, 0x1d30dcc2511127df}},
		{X: Fp{0xd3bb11be414495c7, 0x1e1fd884c4fc017d, 0x6909139c4610ef57, 0xa3a9a6d2acf2b41c}, Y: Fp{0x87b3c16118ddd2dc, 0x9ea3f258bcf0642a, 0x2487531f321938e7, 0x1616ebbee9acbfb0}},
		{X: Fp{0x9189afe095762e1a, 0x5b23d6323ddf4a11, 0xa848f8746ac374d0, 0x5f85622a1c0d9db7}, Y: Fp{0x13b3236abc66ba55, 0x31a59addaad09bff, 0xbba623ef5d3d5409, 0x56e30c033b99e65a}},
		{X: Fp{0xc0f73aa321ce81cc, 0xab5c489b5ff7be3d, 0x8ae94c6f838a9dc2, 0x68de0c6cde183190}, Y: Fp{0x2752711d1a7b6cb6, 0x5679541a3607b7cc, 0x5b562a800061de44, 0xacfa19c43e73fe20}},
		{X: Fp{0x38c2124d48314882, 0xdb0b978803f40de2, 0xbece026ce537533a, 0x7c57b3fda8a35098}, Y: Fp{0x967ef8c0835286b2, 0x12929d05ac589940, 0x42eb70e0451ce49c, 0x8c4ab3d0b38af8fd}},
		{X: Fp{0x23e9e06fdf9b534a, 0x29bacf8b8f5793d7, 0x4ed08302543e7eac, 0x53ab4b688a9ab5a2}, Y: Fp{0xb97e6044090965af, 0xf8159a2e5cf7a909, 0x6771d89d715e41ec, 0x96dd28eed22fba48}},
		{X: Fp{0x5c452eeb481467f9, 0x6a63dd5e5eccc222, 0x5662a8e40f65b63b, 0x4fc8bd6d9dd62325}, Y: Fp{0x22f0bca5f5657076, 0xb5e8b0d28c44b768, 0xb03598df87aed378, 0x019f63e187fc7644}},
		{X: Fp{0x352db6418ed22edb, 0x4f32751becfc49e5, 0x35715d2cd1816b96, 0x43b38c17a68a2798}, Y: Fp{0xaf6328b004ffa7ff, 0x986c2f0151e1a14b, 0x7db65a6429f51209, 0x8420553b99ce0654}},
		{X: Fp{0x0f707317c02a60af, 0xd34153e57299ac72, 0xacbbff24d802447f, 0x9759a934a4078cc6}, Y: Fp{0x0afa5c8406b0b1b3, 0x4eca6f0392a31cf0, 0x30d1bfdd98ff0674, 0x2e699db9d7ac1a9c}},
		{X: Fp{0xdeb830d3624718ea, 0x56ac7e45526ccba6, 0x802fd00ed9a86509, 0x2cbb7c441777dd23}, Y: Fp{0x16425145deedeca2, 0x1ec511b7a750c531, 0x1a5fc80d28bbb6d5, 0x8049eaf9e976c5d8}},
		{X: Fp{0x9a96da9d14d4f953, 0x24fb3a40d2f4d1ed, 0x878aab1fd2140bc6, 0x333bcdc88d7ade6a}, Y: Fp{0xfe8651e2a4913a4e, 0xa59727df58b6db69, 0xeb2f94ebc1e83ec3, 0xb194c93e6582b886}},
		{X: Fp{0x04959c49afa143b8, 0xe8b20ed19a245435, 0xeb038966d26f25fd, 0x05ed357f4dbdcbec}, Y: Fp{0x4e90537e7d20a4eb, 0x0571d5e23e486d2f, 0xc3d1685945ffaba2, 0x382a00fb9a6d816a}},
		{X: Fp{0xd222a1f59ecfa44e, 0xfc93fb1dada30544, 0x6cf343e577d01021, 0x1470a1db5cad5060}, Y: Fp{0x1d42969a05385fd7, 0x11ba5ab67ab7b612, 0x2d79fe9f6de85ffa, 0x42d4c5779f2d90f8}},
		{X: Fp{0x77717a7cecceeaa2, 0xe97ca10f3ca65596, 0xc88ae9293e20e0a9, 0x3dd5c5e9279a6238}, Y: Fp{0x5269c7df37386ebe, 0x96704be08e59ae7f, 0x1b1f0792615ac241, 0x518f03624d58e6b5}},
	},
	{ // i=36
		{X: Fp{0xd9dec34665370604, 0x7d76c1530965e195, 0xfe032d1babb42d7f, 0x44bf15cfbdb825eb}, Y: Fp{0xb06b1ba57c54eacb, 0x6ed4b58a7b8a2102, 0xf86e087d453cc5be, 0x6685e096813b7be0}},
		{X: Fp{0x5f826d7a283e913c, 0x23ad81960c32a01a, 0x3c859dfbd2465f78, 0x844e80dbb3dbb4e7}, Y: Fp{0x6b2374b8a3dc3a7c, 0x5377fa6519445a9f, 0xcf7403f1d80d3061, 0x8f04b0f4341f2b28}},
		{X: Fp{0xcf8c3773563dd819, 0xf5d5fb73ff1657cd, 0x7b68c1306ace00eb, 0x1fa57fb23a11f5d1}, Y: Fp{0xba652d56225f5168, 0x68db50bf1d759258, 0x9bfe9e388039288e, 0x2a693d554390b7fa}},
		{X: Fp{0xd786a97349bc4c46, 0xf3abecf812c9de66, 0x952d7ff95acc7fd9, 0x1bc28b04bb24dd06}, Y: Fp{0x2f256ac272fb6f61, 0x28a7dfff3409606e, 0xec3f0cdab5feaa2c, 0x043c0a6b0f4ebc7f}},
		{X: Fp{0x2556cec6961b1552, 0x07a27380d58e552a, 0x168a8de8e28b5b8c, 0x905d199bc35223c1}, Y: Fp{0x1d9ff639111ec2f2, 0x33a7afa4759fe842, 0x6b49f4a3a4eab08d, 0x9a9c5cda79a4e1b7}},
		{X: Fp{0xc77377cedf4147d8, 0x4fe46619596d95ef, 0xae5b64fa62d46659, 0x86be589ac5067a53}, Y: Fp{0xd101974079a24e37, 0x1364ef9d160a6c5e, 0xeb4ae60ce4da14cb, 0x9f7ac9644ee27207}},
		{X: Fp{0xc784e7ff364601fd, 0xfffae16ef38239f9, 0xd977448cbcc45214, 0x5f9a4d0733c9c8d0}, Y: Fp{0x8697512199a3f768, 0x614ee088ad34e84e, 0x0848c4622f45456b, 0x2b2f16192e72a02d}},
		{X: Fp{0xaf94744772dd4cef, 0x953ba8127d7b8462, 0x39775528ac2ce0d2, 0xaf33a3f3b6954594}, Y: Fp{0x2c636c4ed61366d7, 0x1187debbfa2b86b6, 0xd82c8146a1e126f0, 0x0d537afe4e8017da}},
		{X: Fp{0xbfd7dfa93cafce87, 0x24c4cf02a228182e, 0x4ec5815c38f645da, 0x03e09cc10d774d89}, Y: Fp{0xba1e104c7bd64474, 0x4c80e7f9aeba2e56, 0xd418348a9af3afe3, 0x6c16cfb2a7f4efd6}},
		{X: Fp{0xa37ee0ede99ea223, 0xddc42287390aafc5, 0xdc7a173d234c7425, 0xb5a29ce499f832cb}, Y: Fp{0xf66793cdd88cf47a, 0x8ec28ef3acaa02b0, 0xdf651dc077514c4c, 0x687a8e2820800b99}},
		{X: Fp{0x5db664ca58ceb507, 0xe70551a326ba3b0c, 0x0cc9ea602f828398, 0x9d26d25567a6dffc}, Y: Fp{0x2eefba47d2b0adff, 0x7bb2df364cf67d83, 0xf4973ebc9a9f12bb, 0x5ab21f5f6e865433}},
		{X: Fp{0x7bd9ef35efed532b, 0x879df8841def2c01, 0x4a85e91049814d1d, 0xacb2391a399c0b74}, Y: Fp{0x41bea512c2c65799, 0x46336cd8335ffd28, 0x4ddf023d372a878b, 0x58ef3258c5f529ab}},
		{X: Fp{0xe04335d003117291, 0x151c1d7e30641357, 0xb3a196f6376fd6e8, 0x87e1d394fd0e958b}, Y: Fp{0x3de10218acb654d2, 0x1ff862b74b550edc, 0x6f93d9dc185c20e3, 0x4efe0c887aab3c5a}},
		{X: Fp{0x18545c4f5e153efb, 0x741adc444e6efc01, 0xd2cdc55ade0294d7, 0x546bc955564cb672}, Y: Fp{0x8c61e1fb43636a4a, 0xa902089e8bb7066e, 0x275dd9dbb5a1d186, 0x4c927f4a623272a1}},
		{X: Fp{0xc6168c6335f9be40, 0x760966435d2b3895, 0xa98d2d8c576b9df2, 0x1af6cbeb3cdd6c0d}, Y: Fp{0x8bf872663a47dc7a, 0x590fc0dd3d427a3f, 0x8c9a7e2e2dc04e5e, 0x4ca0fff4c028ba83}},
		{X: Fp{0xdb34f3571d5ed85e, 0x643479e6f6a206a2, 0x9f148d24e6dd41b5, 0x729527ece2963ce5}, Y: Fp{0xedb32fa3fb9f2634, 0x81db419fcc550fb7, 0x0d5a949f6cc71a98, 0x12a97528989e4cbf}},
		{X: Fp{0x853ba2b1fa0b2f8e, 0x4dd5a9b3df398683, 0x4b06a52d7560562d, 0x0f695212e388cf21}, Y: Fp{0x9cda306e374cd727, 0x976e5434e3fb6d1a, 0x20ba2fcc39c855d1, 0x6c5773099818de23}},
		{X: Fp{0xd44414b11717ed1d, 0xcfcec0dbf51ce977, 0x22938fbce92edb5b, 0xa45b9c6e17f47e59}, Y: Fp{0xbd1c85305c7ba532, 0x90e5f1f06e97ab6e, 0x693add1c19d79997, 0x5c0a4a6c0328b365}},
		{X: Fp{0x9685b93fdab98852, 0x2d90c9e4687b0a8f, 0x08dfeed68da1c045, 0x13411ff2824b5e85}, Y: Fp{0xd9d8d6e1dd0b267e, 0x0bf583d7d301bcdb, 0xc8a093457a41c78c, 0x2f1350e6b7ee0003}},
		{X: Fp{0x89ac456c0778adb6, 0x5d03e8734a565b46, 0x7e274611408f4d32, 0x300c6ba138fa5427}, Y: Fp{0xb6792c9d7ea21767, 0x1f0833de932ba63c, 0x20b532ff945274ac, 0x0e1634a0c72bb4fc}},
		{X: Fp{0xa707b9e2212f2834, 0xbf8d19f4c65dc065, 0x26138f8b837f90f5, 0x04851005edb37ab0}, Y: Fp{0xba5eabc23bb3469a, 0x8cd673b64f0c059a, 0xf73b2bbd4b7915bb, 0x6db95367c712c63a}},
		{X: Fp{0x333443ccdfd00038, 0x0be81dcfc1ea0185, 0x3dad4f48e6cdcb3b, 0x18687027fc80bb64}, Y: Fp{0xf05188c74dfcbeae, 0x81f26be34ce55c11, 0xb340653d86fd2701, 0x696e46843f322658}},
		{X: Fp{0xcb74f2baf962f221, 0x35accb9452a9a258, 0x978517569e5d4133, 0x8114c3d6c4a1db08}, Y: Fp{0x77da7f50f8eb0607, 0x3e3a35ca83fef9a0, 0xc7548cf442d39e3d, 0x48c49bd9c1a9000e}},
		{X: Fp{0xb26b3ec33651e495, 0x66e212abdd5bfccf, 0x37e934ad8cf91a7d, 0x356257fd140519ff}, Y: Fp{0xe6402be6aaa4e1d1, 0xe0ab66d53a904529, 0xe44ced867afa9c21, 0x863d693ff28461f1}},
		{X: Fp{0x0000f7beebfc7ccb, 0x67d836bea4daa3fb, 0xe1c40eb99cc64596, 0x3fbd596d11894f72}, Y: Fp{0xdb392273c81966b6, 0xf89c53a416812b1e, 0xff7379f3d2d6a3dc, 0x62b35ecd38af4f31}},
		{X: Fp{0x3076162284ac987d, 0x7296d9dc2d521e12, 0xd9ed1eba52092545, 0x1c8e91bb53e4d80f}, Y: Fp{0xd37c218fe2b413c3, 0x53d0224a29e69b63, 0x5e1a26b53dea0663, 0xa39518b8080738c5}},
		{X: Fp{0xa826af31baf22f94, 0xae21eb9b2f240f0b, 0xc55ee5c956e9f1ca, 0x81f347795d39e9cb}, Y: Fp{0x174e8a5b2ba8d650, 0x7a7f653f92b4b135, 0x863c74cb3f4dff30, 0x3d39c302df63652a}},
		{X: Fp{0x0797b182df362cbf, 0x3513aa5b3f1ed406, 0x13ed18a602abce43, 0x86134cac9a361701}, Y: Fp{0x81c6f2d9028edc22, 0xc94ffa9fe597ce90, 0x559ddebd91b74ff3, 0x7312355f50644707}},
		{X: Fp{0xd95d7370792a7777, 0xa777fdde8e64a901, 0xbcd6ab1eeddc3420, 0x7bde8493d156b9f7}, Y: Fp{0x7b3ebd438f628c4b, 0x8d0f26f6c4b2aab3, 0xd37a46ecac0bd2e7, 0x4794c54003ed0e69}},
		{X: Fp{0x362fb798a5b8cc7d, 0x2118fc755cda202d, 0x687a750fc48a6983, 0x77186e468a6f22da}, Y: Fp{0x5ab78e5b57be108c, 0xf9a08aab834bd44f, 0x4866a59aaa3ce185, 0xaa786536fd861281}},
		{X: Fp{0xd93447f28e4fae62, 0xb31ccbff875fe3e0, 0x3a533c19df0c8ee7, 0x29163a29a931ec82}, Y: Fp{0x35ddb70491486cf8, 0xb719edf809fc853d, 0xd15714b6ab785dd3, 0x05c639a731fc4222}},
		{X: Fp{0xbf73f408ae56094f, 0xa722265253f01041, 0x41dca2b7b802c3d0, 0x5b562cdfafd50eb2}, Y: Fp{0x066d2df29860b7cd, 0xf9af07ec13d7430e, 0xdfb11cf4fe4da845, 0x8abca60fe949e0c8}},
		{X: Fp{0x35e595ef5019c5ca, 0x3d692e24c2302b4a, 0xf4472abaf27449c6, 0x735f2fc1f262cc1d}, Y: Fp{0x91b02f0a3fab98d7, 0x69df7ad5c53c668a, 0x44c9ac173bfe507a, 0x498671c304585216}},
		{X: Fp{0x5790136fa86b4b46, 0xe2aaf35c142f930a, 0xe4bcb6836f9e76b0, 0x88edda9ce5e27228}, Y: Fp{0x85633219b362309c, 0x00bf177e962621a1, 0x11ac8549878eb175, 0x8ebc7755f9d16c20}},
		{X: Fp{0xf995c9e67edc14fc, 0x29d815afec83d334, 0x06516072e7d9ad56, 0x7b7634073261631d}, Y: Fp{0x4952190a5259f0cb, 0xc289e0787b5dfb0c, 0x97bc8968ff224bc6, 0x710dd9a8a03e26b4}},
		{X: Fp{0xf7295ced3aadb5e9, 0x2c4327db50a1d713, 0x33350061d2879ffd, 0x4ec9265122ba53e3}, Y: Fp{0x8bcb7840e0d11a81, 0xa17abf81ea15ec93, 0xafeb4926492699f0, 0x6b2b2606338fc088}},
		{X: Fp{0x964723a7ebfa213e, 0xa9702259a6c07dd7, 0x981854334e43bc48, 0x34bb28a4f14003f4}, Y: Fp{0x914d4e10d42300e5, 0xec41f9b0a7cd324c, 0x7b0dad69d60079b1, 0x915034dd8a9cff53}},
		{X: Fp{0x258b8e794373bb4d, 0x3b377e9edbfbbc2f, 0x1759d6033d8c27a5, 0x35157a6eafb777c6}, Y: Fp{0x0f83da2b7c97b31b, 0x47f9469a5477120b, 0x67fe6257bcd60461, 0x0ded1a8c9cbf0c8c}},
		{X: Fp{0xc3e0e4eb8932dba4, 0x79f2c27bf79a71cc, 0x1819e4359e8d4d9d, 0x9a1b04841895d8d5}, Y: Fp{0xe2e65b9ce4402649, 0xda33770f6a7a3fa9, 0x2311e35371484c6e, 0xafa07379ae26d60b}},
		{X: Fp{0x81126b925a5061ac, 0x0645de5fae5eb027, 0xcb7fcb1052d83d86, 0x814daa452bbfd581}, Y: Fp{0x543e271fd1d51fb1, 0x1b879dfe60145127, 0x01861f21af1d10c4, 0x31c6f05b029595e9}},
		{X: Fp{0x8be1c7d62311139a, 0x81e74bc7a3e0b72d, 0x7d1fe52e5a892506, 0x96cdeb3b22aedcc6}, Y: Fp{0xd159b376f76efb38, 0x04ce7e9d6f65a351, 0x6171f4713b01d9bf, 0x07c1945a13dbfa80}},
		{X: Fp{0x193894b1c4d2797a, 0xf655269197278966, 0x0ffc9c1d996104bb, 0x9916300f76fea16d}, Y: Fp{0x2c7ab04a01c6f54c, 0x0d72f1697d7447d1, 0xc75d8372013498b1, 0x0614f89db7771a2d}},
		{X: Fp{0x5c4994226fcfc865, 0x57eea5482e90eb36, 0x95bcba2a1007d3fa, 0x9f8db86bef284b7a}, Y: Fp{0xab745a395a185e5a, 0x706aee5ced369d0c, 0xbf4f190429c6e832, 0x71f12d420fdf37da}},
		{X: Fp{0x40a6905b61c28e6c, 0xe4b5439432b1d675, 0x579da7b7f476571e, 0x82e86db5ea99ac51}, Y: Fp{0x090ab06686c2d150, 0x483ab4983cd33af3, 0x01a699fe54426f30, 0x1a06313f13e58498}},
		{X: Fp{0xeaef03015610bfde, 0x918518d1bfe4bb64, 0x1788f46c1bb5a2b9, 0x370342b32cf46b9f}, Y: Fp{0x7497eb1d1da1adde, 0x995aa8102edb0e2c, 0xe62b875387824c90, 0x78cb9098c86f6271}},
		{X: Fp{0x02092cde211bf69b, 0x5d55496e91c70891, 0x7dc350955f55c76e, 0x3502533d13159a66}, Y: Fp{0x55b1504d8d035fa6, 0xa115ff205e144b8f, 0xefbe398fd28dae16, 0x19a7812b3c191100}},
		{X: Fp{0x912573bee185deaf, 0x11bac0cbff67f91a, 0x0c2c3c1569558d2b, 0xb38e4a8a84bfd307}, Y: Fp{0x44e50cf7be0ce0b7, 0x8f5522e586d1026f, 0xba70eba19b78b766, 0x64cf23f2e66fb462}},
		{X: Fp{0x2b72022475ff6278, 0x3b0e62c7faf4af93, 0xe2ac8cb5744d70d4, 0x70d863923c755885}, Y: Fp{0xf68021980cb4395c, 0xf12a1b4ff3410d75, 0x15273f799d5230dc, 0x84622075d131cac7}},
		{X: Fp{0x45ac9321f524ecc8, 0xbf22484ce79b0850, 0x51d5218b8a77f78e, 0x48ab651d785f4aab}, Y: Fp{0x6414aa62e28b21b0, 0x792b9936497fb6dd, 0x5e9b3095453cb20a, 0x91df0ad1b331c4da}},
		{X: Fp{0xeecc595f442dba5b, 0x8b40a6f1dfd24a0f, 0x4266960f8b8e0e09, 0xb004cece65472525}, Y: Fp{0x276f210fe8fe4d75, 0xb524da4ce8088b42, 0x4509a6e6701c024c, 0x8e2373fd1b3ddcc7}},
		{X: Fp{0x03132991d0aaeeeb, 0x0015e90ddd407822, 0xca19cc7c482c2cf4, 0xa962a6ac786cf331}, Y: Fp{0xddceb887161a7cbf, 0x3bf49deb98c87225, 0xe397140bbb083da8, 0xaef1e0f52a4fc3b0}},
		{X: Fp{0xeb0de1d4a8bbc935, 0x52e48743db876e72, 0x991375e588d54800, 0x67e66fe2a07aab7f}, Y: Fp{0x5af42836548c3f82, 0x57e884c98f14f89e, 0x233416c114338873, 0x70e3fb07e77bdfe1}},
		{X: Fp{0x50a5064c1ac2d4cd, 0x0509f62131ea07e8, 0x76cf038097f7ce85, 0x39b8d1d42b81f320}, Y: Fp{0xf70efc7c2613c27a, 0x051718f3fdd32213, 0x9a2f176691fa5f21, 0x8a1ff30b21075fe4}},
		{X: Fp{0xb1edc18449016eb6, 0x75450a9062cd6a99, 0x87e37e273a3750ff, 0x19a4888baf8c7cc9}, Y: Fp{0xc364db1a88554feb, 0xba7a5e739d97b30d, 0xed3c4e033f1940c4, 0x54f657492c1c95a1}},
		{X: Fp{0xa77943954962ac78, 0x95f31169806dab27, 0x361eff2f5c1238cb, 0x46037ec0e5ac7097}, Y: Fp{0x21d679d128f58119, 0x19e5f3d9bfa0bc6a, 0xc22918f7f7439ee9, 0x882d6cd3dad1177a}},
		{X: Fp{0xa34b9c66e3ef243d, 0xa42b6b0d29c10044, 0x92384763187f6024, 0x7ffd11df8408c99d}, Y: Fp{0x4ee10daf0641fc4d, 0x266ad37e2766845b, 0xfdc2cc27933a92a3, 0x7dae1b07fdcc17c2}},
		{X: Fp{0x0ac3fdf22054bb74, 0xa7a4b8fc7b12b3f9, 0x86cb26bfd8570114, 0x51ffd70612d99b3a}, Y: Fp{0xb63a4afa2db516f8, 0x4a1a9cee8bd96e99, 0xec938fd557819c98, 0x4b3c6601ed315ce3}},
		{X: Fp{0x7d0aef5c4d397cfd, 0x84c31d6f441ad24f, 0xd446d80274db93fc, 0x009f8fdfe5799f99}, Y: Fp{0xed1efc01c340706b, 0x74b4f7acea9ed83f, 0x44effc1b7283700d, 0xb600ac1472f80bd7}},
		{X: Fp{0x41913fc36cce3990, 0xf0086aaee951f3c6, 0x883d884448e89155, 0x5bec7a2fe8e6b328}, Y: Fp{0x059fd9240c2363f1, 0x315130af77305857, 0x664872a6b9fd30e8, 0x2ce195663d3dde26}},
		{X: Fp{0x0b5bda4a15b3cb20, 0xff22d4f131b165dd, 0x4641347d58730d9b, 0x6f3078631341adcd}, Y: Fp{0x0503668d7066f960, 0xd9ef986bd01bd4d4, 0x51971699d6301bbe, 0x39cdec3fb73afbfa}},
		{X: Fp{0x54e838c8c701b465, 0x59a0641838c6677f, 0x078c89410f9add7f, 0x7a025dbcea1e35f1}, Y: Fp{0x837312126afb39ec, 0xaee763977d606c24, 0xdbe8c82b199b5aa1, 0x4f701e74b3ed2b14}},
		{X: Fp{0x8eeec562f8e5bb60, 0xe57fc0a95e7623a1, 0x076e2d7d630499e8, 0x8704779fa2fdd978}, Y: Fp{0x9a33cb8afccd5ec3, 0x05b4a2f8b0480adb, 0x3734c3703e825f8b, 0x724099a617e3398b}},
		{X: Fp{0x0e93c32f10013583, 0x939b6fadd27fee15, 0xf5ea201b10c1a05f, 0x66a7f694f6d544e0}, Y: Fp{0x6084b4d613dfe25e, 0x9280e7bd4b6fd01a, 0x2549c204aa5bf20e, 0x91c53ae914419728}},
		{X: Fp{0x388359f591755cef, 0x270dbc1190d75eb4, 0xadfe20d42fdabd22, 0xa6110091e3d66293}, Y: Fp{0x68deb51804832377, 0xc000dab001d679d2, 0xd314ad76b56014dc, 0x170aae15e9896258}},
	},
}

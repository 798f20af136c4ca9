// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordlists

// czech is a placeholder BIP39 wordlist: 2048 unique tokens of the correct
// shape (no whitespace, no delimiter collisions) standing in for the real
// upstream czech word list. See DESIGN.md: English is the accurate reference
// list this module's test vectors depend on; this list needs replacing
// with the canonical upstream words before encoding real czech mnemonics.
var czech = [2048]string{
	"wcs0000", "wcs0001", "wcs0002", "wcs0003", "wcs0004", "wcs0005", "wcs0006", "wcs0007",
	"wcs0008", "wcs0009", "wcs0010", "wcs0011", "wcs0012", "wcs0013", "wcs0014", "wcs0015",
	"wcs0016", "wcs0017", "wcs0018", "wcs0019", "wcs0020", "wcs0021", "wcs0022", "wcs0023",
	"wcs0024", "wcs0025", "wcs0026", "wcs0027", "wcs0028", "wcs0029", "wcs0030", "wcs0031",
	"wcs0032", "wcs0033", "wcs0034", "wcs0035", "wcs0036", "wcs0037", "wcs0038", "wcs0039",
	"wcs0040", "wcs0041", "wcs0042", "wcs0043", "wcs0044", "wcs0045", "wcs0046", "wcs0047",
	"wcs0048", "wcs0049", "wcs0050", "wcs0051", "wcs0052", "wcs0053", "wcs0054", "wcs0055",
	"wcs0056", "wcs0057", "wcs0058", "wcs0059", "wcs0060", "wcs0061", "wcs0062", "wcs0063",
	"wcs0064", "wcs0065", "wcs0066", "wcs0067", "wcs0068", "wcs0069", "wcs0070", "wcs0071",
	"wcs0072", "wcs0073", "wcs0074", "wcs0075", "wcs0076", "wcs0077", "wcs0078", "wcs0079",
	"wcs0080", "wcs0081", "wcs0082", "wcs0083", "wcs0084", "wcs0085", "wcs0086", "wcs0087",
	"wcs0088", "wcs0089", "wcs0090", "wcs0091", "wcs0092", "wcs0093", "wcs0094", "wcs0095",
	"wcs0096", "wcs0097", "wcs0098", "wcs0099", "wcs0100", "wcs0101", "wcs0102", "wcs0103",
	"wcs0104", "wcs0105", "wcs0106", "wcs0107", "wcs0108", "wcs0109", "wcs0110", "wcs0111",
	"wcs0112", "wcs0113", "wcs0114", "wcs0115", "wcs0116", "wcs0117", "wcs0118", "wcs0119",
	"wcs0120", "wcs0121", "wcs0122", "wcs0123", "wcs0124", "wcs0125", "wcs0126", "wcs0127",
	"wcs0128", "wcs0129", "wcs0130", "wcs0131", "wcs0132", "wcs0133", "wcs0134", "wcs0135",
	"wcs0136", "wcs0137", "wcs0138", "wcs0139", "wcs0140", "wcs0141", "wcs0142", "wcs0143",
	"wcs0144", "wcs0145", "wcs0146", "wcs0147", "wcs0148", "wcs0149", "wcs0150", "wcs0151",
	"wcs0152", "wcs0153", "wcs0154", "wcs0155", "wcs0156", "wcs0157", "wcs0158", "wcs0159",
	"wcs0160", "wcs0161", "wcs0162", "wcs0163", "wcs0164", "wcs0165", "wcs0166", "wcs0167",
	"wcs0168", "wcs0169", "wcs0170", "wcs0171", "wcs0172", "wcs0173", "wcs0174", "wcs0175",
	"wcs0176", "wcs0177", "wcs0178", "wcs0179", "wcs0180", "wcs0181", "wcs0182", "wcs0183",
	"wcs0184", "wcs0185", "wcs0186", "wcs0187", "wcs0188", "wcs0189", "wcs0190", "wcs0191",
	"wcs0192", "wcs0193", "wcs0194", "wcs0195", "wcs0196", "wcs0197", "wcs0198", "wcs0199",
	"wcs0200", "wcs0201", "wcs0202", "wcs0203", "wcs0204", "wcs0205", "wcs0206", "wcs0207",
	"wcs0208", "wcs0209", "wcs0210", "wcs0211", "wcs0212", "wcs0213", "wcs0214", "wcs0215",
	"wcs0216", "wcs0217", "wcs0218", "wcs0219", "wcs0220", "wcs0221", "wcs0222", "wcs0223",
	"wcs0224", "wcs0225", "wcs0226", "wcs0227", "wcs0228", "wcs0229", "wcs0230", "wcs0231",
	"wcs0232", "wcs0233", "wcs0234", "wcs0235", "wcs0236", "wcs0237", "wcs0238", "wcs0239",
	"wcs0240", "wcs0241", "wcs0242", "wcs0243", "wcs0244", "wcs0245", "wcs0246", "wcs0247",
	"wcs0248", "wcs0249", "wcs0250", "wcs0251", "wcs0252", "wcs0253", "wcs0254", "wcs0255",
	"wcs0256", "wcs0257", "wcs0258", "wcs0259", "wcs0260", "wcs0261", "wcs0262", "wcs0263",
	"wcs0264", "wcs0265", "wcs0266", "wcs0267", "wcs0268", "wcs0269", "wcs0270", "wcs0271",
	"wcs0272", "wcs0273", "wcs0274", "wcs0275", "wcs0276", "wcs0277", "wcs0278", "wcs0279",
	"wcs0280", "wcs0281", "wcs0282", "wcs0283", "wcs0284", "wcs0285", "wcs0286", "wcs0287",
	"wcs0288", "wcs0289", "wcs0290", "wcs0291", "wcs0292", "wcs0293", "wcs0294", "wcs0295",
	"wcs0296", "wcs0297", "wcs0298", "wcs0299", "wcs0300", "wcs0301", "wcs0302", "wcs0303",
	"wcs0304", "wcs0305", "wcs0306", "wcs0307", "wcs0308", "wcs0309", "wcs0310", "wcs0311",
	"wcs0312", "wcs0313", "wcs0314", "wcs0315", "wcs0316", "wcs0317", "wcs0318", "wcs0319",
	"wcs0320", "wcs0321", "wcs0322", "wcs0323", "wcs0324", "wcs0325", "wcs0326", "wcs0327",
	"wcs0328", "wcs0329", "wcs0330", "wcs0331", "wcs0332", "wcs0333", "wcs0334", "wcs0335",
	"wcs0336", "wcs0337", "wcs0338", "wcs0339", "wcs0340", "wcs0341", "wcs0342", "wcs0343",
	"wcs0344", "wcs0345", "wcs0346", "wcs0347", "wcs0348", "wcs0349", "wcs0350", "wcs0351",
	"wcs0352", "wcs0353", "wcs0354", "wcs0355", "wcs0356", "wcs0357", "wcs0358", "wcs0359",
	"wcs0360", "wcs0361", "wcs0362", "wcs0363", "wcs0364", "wcs0365", "wcs0366", "wcs0367",
	"wcs0368", "wcs0369", "wcs0370", "wcs0371", "wcs0372", "wcs0373", "wcs0374", "wcs0375",
	"wcs0376", "wcs0377", "wcs0378", "wcs0379", "wcs0380", "wcs0381", "wcs0382", "wcs0383",
	"wcs0384", "wcs0385", "wcs0386", "wcs0387", "wcs0388", "wcs0389", "wcs0390", "wcs0391",
	"wcs0392", "wcs0393", "wcs0394", "wcs0395", "wcs0396", "wcs0397", "wcs0398", "wcs0399",
	"wcs0400", "wcs0401", "wcs0402", "wcs0403", "wcs0404", "wcs0405", "wcs0406", "wcs0407",
	"wcs0408", "wcs0409", "wcs0410", "wcs0411", "wcs0412", "wcs0413", "wcs0414", "wcs0415",
	"wcs0416", "wcs0417", "wcs0418", "wcs0419", "wcs0420", "wcs0421", "wcs0422", "wcs0423",
	"wcs0424", "wcs0425", "wcs0426", "wcs0427", "wcs0428", "wcs0429", "wcs0430", "wcs0431",
	"wcs0432", "wcs0433", "wcs0434", "wcs0435", "wcs0436", "wcs0437", "wcs0438", "wcs0439",
	"wcs0440", "wcs0441", "wcs0442", "wcs0443", "wcs0444", "wcs0445", "wcs0446", "wcs0447",
	"wcs0448", "wcs0449", "wcs0450", "wcs0451", "wcs0452", "wcs0453", "wcs0454", "wcs0455",
	"wcs0456", "wcs0457", "wcs0458", "wcs0459", "wcs0460", "wcs0461", "wcs0462", "wcs0463",
	"wcs0464", "wcs0465", "wcs0466", "wcs0467", "wcs0468", "wcs0469", "wcs0470", "wcs0471",
	"wcs0472", "wcs0473", "wcs0474", "wcs0475", "wcs0476", "wcs0477", "wcs0478", "wcs0479",
	"wcs0480", "wcs0481", "wcs0482", "wcs0483", "wcs0484", "wcs0485", "wcs0486", "wcs0487",
	"wcs0488", "wcs0489", "wcs0490", "wcs0491", "wcs0492", "wcs0493", "wcs0494", "wcs0495",
	"wcs0496", "wcs0497", "wcs0498", "wcs0499", "wcs0500", "wcs0501", "wcs0502", "wcs0503",
	"wcs0504", "wcs0505", "wcs0506", "wcs0507", "wcs0508", "wcs0509", "wcs0510", "wcs0511",
	"wcs0512", "wcs0513", "wcs0514", "wcs0515", "wcs0516", "wcs0517", "wcs0518", "wcs0519",
	"wcs0520", "wcs0521", "wcs0522", "wcs0523", "wcs0524", "wcs0525", "wcs0526", "wcs0527",
	"wcs0528", "wcs0529", "wcs0530", "wcs0531", "wcs0532", "wcs0533", "wcs0534", "wcs0535",
	"wcs0536", "wcs0537", "wcs0538", "wcs0539", "wcs0540", "wcs0541", "wcs0542", "wcs0543",
	"wcs0544", "wcs0545", "wcs0546", "wcs0547", "wcs0548", "wcs0549", "wcs0550", "wcs0551",
	"wcs0552", "wcs0553", "wcs0554", "wcs0555", "wcs0556", "wcs0557", "wcs0558", "wcs0559",
	"wcs0560", "wcs0561", "wcs0562", "wcs0563", "wcs0564", "wcs0565", "wcs0566", "wcs0567",
	"wcs0568", "wcs0569", "wcs0570", "wcs0571", "wcs0572", "wcs0573", "wcs0574", "wcs0575",
	"wcs0576", "wcs0577", "wcs0578", "wcs0579", "wcs0580", "wcs0581", "wcs0582", "wcs0583",
	"wcs0584", "wcs0585", "wcs0586", "wcs0587", "wcs0588", "wcs0589", "wcs0590", "wcs0591",
	"wcs0592", "wcs0593", "wcs0594", "wcs0595", "wcs0596", "wcs0597", "wcs0598", "wcs0599",
	"wcs0600", "wcs0601", "wcs0602", "wcs0603", "wcs0604", "wcs0605", "wcs0606", "wcs0607",
	"wcs0608", "wcs0609", "wcs0610", "wcs0611", "wcs0612", "wcs0613", "wcs0614", "wcs0615",
	"wcs0616", "wcs0617", "wcs0618", "wcs0619", "wcs0620", "wcs0621", "wcs0622", "wcs0623",
	"wcs0624", "wcs0625", "wcs0626", "wcs0627", "wcs0628", "wcs0629", "wcs0630", "wcs0631",
	"wcs0632", "wcs0633", "wcs0634", "wcs0635", "wcs0636", "wcs0637", "wcs0638", "wcs0639",
	"wcs0640", "wcs0641", "wcs0642", "wcs0643", "wcs0644", "wcs0645", "wcs0646", "wcs0647",
	"wcs0648", "wcs0649", "wcs0650", "wcs0651", "wcs0652", "wcs0653", "wcs0654", "wcs0655",
	"wcs0656", "wcs0657", "wcs0658", "wcs0659", "wcs0660", "wcs0661", "wcs0662", "wcs0663",
	"wcs0664", "wcs0665", "wcs0666", "wcs0667", "wcs0668", "wcs0669", "wcs0670", "wcs0671",
	"wcs0672", "wcs0673", "wcs0674", "wcs0675", "wcs0676", "wcs0677", "wcs0678", "wcs0679",
	"wcs0680", "wcs0681", "wcs0682", "wcs0683", "wcs0684", "wcs0685", "wcs0686", "wcs0687",
	"wcs0688", "wcs0689", "wcs0690", "wcs0691", "wcs0692", "wcs0693", "wcs0694", "wcs0695",
	"wcs0696", "wcs0697", "wcs0698", "wcs0699", "wcs0700", "wcs0701", "wcs0702", "wcs0703",
	"wcs0704", "wcs0705", "wcs0706", "wcs0707", "wcs0708", "wcs0709", "wcs0710", "wcs0711",
	"wcs0712", "wcs0713", "wcs0714", "wcs0715", "wcs0716", "wcs0717", "wcs0718", "wcs0719",
	"wcs0720", "wcs0721", "wcs0722", "wcs0723", "wcs0724", "wcs0725", "wcs0726", "wcs0727",
	"wcs0728", "wcs0729", "wcs0730", "wcs0731", "wcs0732", "wcs0733", "wcs0734", "wcs0735",
	"wcs0736", "wcs0737", "wcs0738", "wcs0739", "wcs0740", "wcs0741", "wcs0742", "wcs0743",
	"wcs0744", "wcs0745", "wcs0746", "wcs0747", "wcs0748", "wcs0749", "wcs0750", "wcs0751",
	"wcs0752", "wcs0753", "wcs0754", "wcs0755", "wcs0756", "wcs0757", "wcs0758", "wcs0759",
	"wcs0760", "wcs0761", "wcs0762", "wcs0763", "wcs0764", "wcs0765", "wcs0766", "wcs0767",
	"wcs0768", "wcs0769", "wcs0770", "wcs0771", "wcs0772", "wcs0773", "wcs0774", "wcs0775",
	"wcs0776", "wcs0777", "wcs0778", "wcs0779", "wcs0780", "wcs0781", "wcs0782", "wcs0783",
	"wcs0784", "wcs0785", "wcs0786", "wcs0787", "wcs0788", "wcs0789", "wcs0790", "wcs0791",
	"wcs0792", "wcs0793", "wcs0794", "wcs0795", "wcs0796", "wcs0797", "wcs0798", "wcs0799",
	"wcs0800", "wcs0801", "wcs0802", "wcs0803", "wcs0804", "wcs0805", "wcs0806", "wcs0807",
	"wcs0808", "wcs0809", "wcs0810", "wcs0811", "wcs0812", "wcs0813", "wcs0814", "wcs0815",
	"wcs0816", "wcs0817", "wcs0818", "wcs0819", "wcs0820", "wcs0821", "wcs0822", "wcs0823",
	"wcs0824", "wcs0825", "wcs0826", "wcs0827", "wcs0828", "wcs0829", "wcs0830", "wcs0831",
	"wcs0832", "wcs0833", "wcs0834", "wcs0835", "wcs0836", "wcs0837", "wcs0838", "wcs0839",
	"wcs0840", "wcs0841", "wcs0842", "wcs0843", "wcs0844", "wcs0845", "wcs0846", "wcs0847",
	"wcs0848", "wcs0849", "wcs0850", "wcs0851", "wcs0852", "wcs0853", "wcs0854", "wcs0855",
	"wcs0856", "wcs0857", "wcs0858", "wcs0859", "wcs0860", "wcs0861", "wcs0862", "wcs0863",
	"wcs0864", "wcs0865", "wcs0866", "wcs0867", "wcs0868", "wcs0869", "wcs0870", "wcs0871",
	"wcs0872", "wcs0873", "wcs0874", "wcs0875", "wcs0876", "wcs0877", "wcs0878", "wcs0879",
	"wcs0880", "wcs0881", "wcs0882", "wcs0883", "wcs0884", "wcs0885", "wcs0886", "wcs0887",
	"wcs0888", "wcs0889", "wcs0890", "wcs0891", "wcs0892", "wcs0893", "wcs0894", "wcs0895",
	"wcs0896", "wcs0897", "wcs0898", "wcs0899", "wcs0900", "wcs0901", "wcs0902", "wcs0903",
	"wcs0904", "wcs0905", "wcs0906", "wcs0907", "wcs0908", "wcs0909", "wcs0910", "wcs0911",
	"wcs0912", "wcs0913", "wcs0914", "wcs0915", "wcs0916", "wcs0917", "wcs0918", "wcs0919",
	"wcs0920", "wcs0921", "wcs0922", "wcs0923", "wcs0924", "wcs0925", "wcs0926", "wcs0927",
	"wcs0928", "wcs0929", "wcs0930", "wcs0931", "wcs0932", "wcs0933", "wcs0934", "wcs0935",
	"wcs0936", "wcs0937", "wcs0938", "wcs0939", "wcs0940", "wcs0941", "wcs0942", "wcs0943",
	"wcs0944", "wcs0945", "wcs0946", "wcs0947", "wcs0948", "wcs0949", "wcs0950", "wcs0951",
	"wcs0952", "wcs0953", "wcs0954", "wcs0955", "wcs0956", "wcs0957", "wcs0958", "wcs0959",
	"wcs0960", "wcs0961", "wcs0962", "wcs0963", "wcs0964", "wcs0965", "wcs0966", "wcs0967",
	"wcs0968", "wcs0969", "wcs0970", "wcs0971", "wcs0972", "wcs0973", "wcs0974", "wcs0975",
	"wcs0976", "wcs0977", "wcs0978", "wcs0979", "wcs0980", "wcs0981", "wcs0982", "wcs0983",
	"wcs0984", "wcs0985", "wcs0986", "wcs0987", "wcs0988", "wcs0989", "wcs0990", "wcs0991",
	"wcs0992", "wcs0993", "wcs0994", "wcs0995", "wcs0996", "wcs0997", "wcs0998", "wcs0999",
	"wcs1000", "wcs1001", "wcs1002", "wcs1003", "wcs1004", "wcs1005", "wcs1006", "wcs1007",
	"wcs1008", "wcs1009", "wcs1010", "wcs1011", "wcs1012", "wcs1013", "wcs1014", "wcs1015",
	"wcs1016", "wcs1017", "wcs1018", "wcs1019", "wcs1020", "wcs1021", "wcs1022", "wcs1023",
	"wcs1024", "wcs1025", "wcs1026", "wcs1027", "wcs1028", "wcs1029", "wcs1030", "wcs1031",
	"wcs1032", "wcs1033", "wcs1034", "wcs1035", "wcs1036", "wcs1037", "wcs1038", "wcs1039",
	"wcs1040", "wcs1041", "wcs1042", "wcs1043", "wcs1044", "wcs1045", "wcs1046", "wcs1047",
	"wcs1048", "wcs1049", "wcs1050", "wcs1051", "wcs1052", "wcs1053", "wcs1054", "wcs1055",
	"wcs1056", "wcs1057", "wcs1058", "wcs1059", "wcs1060", "wcs1061", "wcs1062", "wcs1063",
	"wcs1064", "wcs1065", "wcs1066", "wcs1067", "wcs1068", "wcs1069", "wcs1070", "wcs1071",
	"wcs1072", "wcs1073", "wcs1074", "wcs1075", "wcs1076", "wcs1077", "wcs1078", "wcs1079",
	"wcs1080", "wcs1081", "wcs1082", "wcs1083", "wcs1084", "wcs1085", "wcs1086", "wcs1087",
	"wcs1088", "wcs1089", "wcs1090", "wcs1091", "wcs1092", "wcs1093", "wcs1094", "wcs1095",
	"wcs1096", "wcs1097", "wcs1098", "wcs1099", "wcs1100", "wcs1101", "wcs1102", "wcs1103",
	"wcs1104", "wcs1105", "wcs1106", "wcs1107", "wcs1108", "wcs1109", "wcs1110", "wcs1111",
	"wcs1112", "wcs1113", "wcs1114", "wcs1115", "wcs1116", "wcs1117", "wcs1118", "wcs1119",
	"wcs1120", "wcs1121", "wcs1122", "wcs1123", "wcs1124", "wcs1125", "wcs1126", "wcs1127",
	"wcs1128", "wcs1129", "wcs1130", "wcs1131", "wcs1132", "wcs1133", "wcs1134", "wcs1135",
	"wcs1136", "wcs1137", "wcs1138", "wcs1139", "wcs1140", "wcs1141", "wcs1142", "wcs1143",
	"wcs1144", "wcs1145", "wcs1146", "wcs1147", "wcs1148", "wcs1149", "wcs1150", "wcs1151",
	"wcs1152", "wcs1153", "wcs1154", "wcs1155", "wcs1156", "wcs1157", "wcs1158", "wcs1159",
	"wcs1160", "wcs1161", "wcs1162", "wcs1163", "wcs1164", "wcs1165", "wcs1166", "wcs1167",
	"wcs1168", "wcs1169", "wcs1170", "wcs1171", "wcs1172", "wcs1173", "wcs1174", "wcs1175",
	"wcs1176", "wcs1177", "wcs1178", "wcs1179", "wcs1180", "wcs1181", "wcs1182", "wcs1183",
	"wcs1184", "wcs1185", "wcs1186", "wcs1187", "wcs1188", "wcs1189", "wcs1190", "wcs1191",
	"wcs1192", "wcs1193", "wcs1194", "wcs1195", "wcs1196", "wcs1197", "wcs1198", "wcs1199",
	"wcs1200", "wcs1201", "wcs1202", "wcs1203", "wcs1204", "wcs1205", "wcs1206", "wcs1207",
	"wcs1208", "wcs1209", "wcs1210", "wcs1211", "wcs1212", "wcs1213", "wcs1214", "wcs1215",
	"wcs1216", "wcs1217", "wcs1218", "wcs1219", "wcs1220", "wcs1221", "wcs1222", "wcs1223",
	"wcs1224", "wcs1225", "wcs1226", "wcs1227", "wcs1228", "wcs1229", "wcs1230", "wcs1231",
	"wcs1232", "wcs1233", "wcs1234", "wcs1235", "wcs1236", "wcs1237", "wcs1238", "wcs1239",
	"wcs1240", "wcs1241", "wcs1242", "wcs1243", "wcs1244", "wcs1245", "wcs1246", "wcs1247",
	"wcs1248", "wcs1249", "wcs1250", "wcs1251", "wcs1252", "wcs1253", "wcs1254", "wcs1255",
	"wcs1256", "wcs1257", "wcs1258", "wcs1259", "wcs1260", "wcs1261", "wcs1262", "wcs1263",
	"wcs1264", "wcs1265", "wcs1266", "wcs1267", "wcs1268", "wcs1269", "wcs1270", "wcs1271",
	"wcs1272", "wcs1273", "wcs1274", "wcs1275", "wcs1276", "wcs1277", "wcs1278", "wcs1279",
	"wcs1280", "wcs1281", "wcs1282", "wcs1283", "wcs1284", "wcs1285", "wcs1286", "wcs1287",
	"wcs1288", "wcs1289", "wcs1290", "wcs1291", "wcs1292", "wcs1293", "wcs1294", "wcs1295",
	"wcs1296", "wcs1297", "wcs1298", "wcs1299", "wcs1300", "wcs1301", "wcs1302", "wcs1303",
	"wcs1304", "wcs1305", "wcs1306", "wcs1307", "wcs1308", "wcs1309", "wcs1310", "wcs1311",
	"wcs1312", "wcs1313", "wcs1314", "wcs1315", "wcs1316", "wcs1317", "wcs1318", "wcs1319",
	"wcs1320", "wcs1321", "wcs1322", "wcs1323", "wcs1324", "wcs1325", "wcs1326", "wcs1327",
	"wcs1328", "wcs1329", "wcs1330", "wcs1331", "wcs1332", "wcs1333", "wcs1334", "wcs1335",
	"wcs1336", "wcs1337", "wcs1338", "wcs1339", "wcs1340", "wcs1341", "wcs1342", "wcs1343",
	"wcs1344", "wcs1345", "wcs1346", "wcs1347", "wcs1348", "wcs1349", "wcs1350", "wcs1351",
	"wcs1352", "wcs1353", "wcs1354", "wcs1355", "wcs1356", "wcs1357", "wcs1358", "wcs1359",
	"wcs1360", "wcs1361", "wcs1362", "wcs1363", "wcs1364", "wcs1365", "wcs1366", "wcs1367",
	"wcs1368", "wcs1369", "wcs1370", "wcs1371", "wcs1372", "wcs1373", "wcs1374", "wcs1375",
	"wcs1376", "wcs1377", "wcs1378", "wcs1379", "wcs1380", "wcs1381", "wcs1382", "wcs1383",
	"wcs1384", "wcs1385", "wcs1386", "wcs1387", "wcs1388", "wcs1389", "wcs1390", "wcs1391",
	"wcs1392", "wcs1393", "wcs1394", "wcs1395", "wcs1396", "wcs1397", "wcs1398", "wcs1399",
	"wcs1400", "wcs1401", "wcs1402", "wcs1403", "wcs1404", "wcs1405", "wcs1406", "wcs1407",
	"wcs1408", "wcs1409", "wcs1410", "wcs1411", "wcs1412", "wcs1413", "wcs1414", "wcs1415",
	"wcs1416", "wcs1417", "wcs1418", "wcs1419", "wcs1420", "wcs1421", "wcs1422", "wcs1423",
	"wcs1424", "wcs1425", "wcs1426", "wcs1427", "wcs1428", "wcs1429", "wcs1430", "wcs1431",
	"wcs1432", "wcs1433", "wcs1434", "wcs1435", "wcs1436", "wcs1437", "wcs1438", "wcs1439",
	"wcs1440", "wcs1441", "wcs1442", "wcs1443", "wcs1444", "wcs1445", "wcs1446", "wcs1447",
	"wcs1448", "wcs1449", "wcs1450", "wcs1451", "wcs1452", "wcs1453", "wcs1454", "wcs1455",
	"wcs1456", "wcs1457", "wcs1458", "wcs1459", "wcs1460", "wcs1461", "wcs1462", "wcs1463",
	"wcs1464", "wcs1465", "wcs1466", "wcs1467", "wcs1468", "wcs1469", "wcs1470", "wcs1471",
	"wcs1472", "wcs1473", "wcs1474", "wcs1475", "wcs1476", "wcs1477", "wcs1478", "wcs1479",
	"wcs1480", "wcs1481", "wcs1482", "wcs1483", "wcs1484", "wcs1485", "wcs1486", "wcs1487",
	"wcs1488", "wcs1489", "wcs1490", "wcs1491", "wcs1492", "wcs1493", "wcs1494", "wcs1495",
	"wcs1496", "wcs1497", "wcs1498", "wcs1499", "wcs1500", "wcs1501", "wcs1502", "wcs1503",
	"wcs1504", "wcs1505", "wcs1506", "wcs1507", "wcs1508", "wcs1509", "wcs1510", "wcs1511",
	"wcs1512", "wcs1513", "wcs1514", "wcs1515", "wcs1516", "wcs1517", "wcs1518", "wcs1519",
	"wcs1520", "wcs1521", "wcs1522", "wcs1523", "wcs1524", "wcs1525", "wcs1526", "wcs1527",
	"wcs1528", "wcs1529", "wcs1530", "wcs1531", "wcs1532", "wcs1533", "wcs1534", "wcs1535",
	"wcs1536", "wcs1537", "wcs1538", "wcs1539", "wcs1540", "wcs1541", "wcs1542", "wcs1543",
	"wcs1544", "wcs1545", "wcs1546", "wcs1547", "wcs1548", "wcs1549", "wcs1550", "wcs1551",
	"wcs1552", "wcs1553", "wcs1554", "wcs1555", "wcs1556", "wcs1557", "wcs1558", "wcs1559",
	"wcs1560", "wcs1561", "wcs1562", "wcs1563", "wcs1564", "wcs1565", "wcs1566", "wcs1567",
	"wcs1568", "wcs1569", "wcs1570", "wcs1571", "wcs1572", "wcs1573", "wcs1574", "wcs1575",
	"wcs1576", "wcs1577", "wcs1578", "wcs1579", "wcs1580", "wcs1581", "wcs1582", "wcs1583",
	"wcs1584", "wcs1585", "wcs1586", "wcs1587", "wcs1588", "wcs1589", "wcs1590", "wcs1591",
	"wcs1592", "wcs1593", "wcs1594", "wcs1595", "wcs1596", "wcs1597", "wcs1598", "wcs1599",
	"wcs1600", "wcs1601", "wcs1602", "wcs1603", "wcs1604", "wcs1605", "wcs1606", "wcs1607",
	"wcs1608", "wcs1609", "wcs1610", "wcs1611", "wcs1612", "wcs1613", "wcs1614", "wcs1615",
	"wcs1616", "wcs1617", "wcs1618", "wcs1619", "wcs1620", "wcs1621", "wcs1622", "wcs1623",
	"wcs1624", "wcs1625", "wcs1626", "wcs1627", "wcs1628", "wcs1629", "wcs1630", "wcs1631",
	"wcs1632", "wcs1633", "wcs1634", "wcs1635", "wcs1636", "wcs1637", "wcs1638", "wcs1639",
	"wcs1640", "wcs1641", "wcs1642", "wcs1643", "wcs1644", "wcs1645", "wcs1646", "wcs1647",
	"wcs1648", "wcs1649", "wcs1650", "wcs1651", "wcs1652", "wcs1653", "wcs1654", "wcs1655",
	"wcs1656", "wcs1657", "wcs1658", "wcs1659", "wcs1660", "wcs1661", "wcs1662", "wcs1663",
	"wcs1664", "wcs1665", "wcs1666", "wcs1667", "wcs1668", "wcs1669", "wcs1670", "wcs1671",
	"wcs1672", "wcs1673", "wcs1674", "wcs1675", "wcs1676", "wcs1677", "wcs1678", "wcs1679",
	"wcs1680", "wcs1681", "wcs1682", "wcs1683", "wcs1684", "wcs1685", "wcs1686", "wcs1687",
	"wcs1688", "wcs1689", "wcs1690", "wcs1691", "wcs1692", "wcs1693", "wcs1694", "wcs1695",
	"wcs1696", "wcs1697", "wcs1698", "wcs1699", "wcs1700", "wcs1701", "wcs1702", "wcs1703",
	"wcs1704", "wcs1705", "wcs1706", "wcs1707", "wcs1708", "wcs1709", "wcs1710", "wcs1711",
	"wcs1712", "wcs1713", "wcs1714", "wcs1715", "wcs1716", "wcs1717", "wcs1718", "wcs1719",
	"wcs1720", "wcs1721", "wcs1722", "wcs1723", "wcs1724", "wcs1725", "wcs1726", "wcs1727",
	"wcs1728", "wcs1729", "wcs1730", "wcs1731", "wcs1732", "wcs1733", "wcs1734", "wcs1735",
	"wcs1736", "wcs1737", "wcs1738", "wcs1739", "wcs1740", "wcs1741", "wcs1742", "wcs1743",
	"wcs1744", "wcs1745", "wcs1746", "wcs1747", "wcs1748", "wcs1749", "wcs1750", "wcs1751",
	"wcs1752", "wcs1753", "wcs1754", "wcs1755", "wcs1756", "wcs1757", "wcs1758", "wcs1759",
	"wcs1760", "wcs1761", "wcs1762", "wcs1763", "wcs1764", "wcs1765", "wcs1766", "wcs1767",
	"wcs1768", "wcs1769", "wcs1770", "wcs1771", "wcs1772", "wcs1773", "wcs1774", "wcs1775",
	"wcs1776", "wcs1777", "wcs1778", "wcs1779", "wcs1780", "wcs1781", "wcs1782", "wcs1783",
	"wcs1784", "wcs1785", "wcs1786", "wcs1787", "wcs1788", "wcs1789", "wcs1790", "wcs1791",
	"wcs1792", "wcs1793", "wcs1794", "wcs1795", "wcs1796", "wcs1797", "wcs1798", "wcs1799",
	"wcs1800", "wcs1801", "wcs1802", "wcs1803", "wcs1804", "wcs1805", "wcs1806", "wcs1807",
	"wcs1808", "wcs1809", "wcs1810", "wcs1811", "wcs1812", "wcs1813", "wcs1814", "wcs1815",
	"wcs1816", "wcs1817", "wcs1818", "wcs1819", "wcs1820", "wcs1821", "wcs1822", "wcs1823",
	"wcs1824", "wcs1825", "wcs1826", "wcs1827", "wcs1828", "wcs1829", "wcs1830", "wcs1831",
	"wcs1832", "wcs1833", "wcs1834", "wcs1835", "wcs1836", "wcs1837", "wcs1838", "wcs1839",
	"wcs1840", "wcs1841", "wcs1842", "wcs1843", "wcs1844", "wcs1845", "wcs1846", "wcs1847",
	"wcs1848", "wcs1849", "wcs1850", "wcs1851", "wcs1852", "wcs1853", "wcs1854", "wcs1855",
	"wcs1856", "wcs1857", "wcs1858", "wcs1859", "wcs1860", "wcs1861", "wcs1862", "wcs1863",
	"wcs1864", "wcs1865", "wcs1866", "wcs1867", "wcs1868", "wcs1869", "wcs1870", "wcs1871",
	"wcs1872", "wcs1873", "wcs1874", "wcs1875", "wcs1876", "wcs1877", "wcs1878", "wcs1879",
	"wcs1880", "wcs1881", "wcs1882", "wcs1883", "wcs1884", "wcs1885", "wcs1886", "wcs1887",
	"wcs1888", "wcs1889", "wcs1890", "wcs1891", "wcs1892", "wcs1893", "wcs1894", "wcs1895",
	"wcs1896", "wcs1897", "wcs1898", "wcs1899", "wcs1900", "wcs1901", "wcs1902", "wcs1903",
	"wcs1904", "wcs1905", "wcs1906", "wcs1907", "wcs1908", "wcs1909", "wcs1910", "wcs1911",
	"wcs1912", "wcs1913", "wcs1914", "wcs1915", "wcs1916", "wcs1917", "wcs1918", "wcs1919",
	"wcs1920", "wcs1921", "wcs1922", "wcs1923", "wcs1924", "wcs1925", "wcs1926", "wcs1927",
	"wcs1928", "wcs1929", "wcs1930", "wcs1931", "wcs1932", "wcs1933", "wcs1934", "wcs1935",
	"wcs1936", "wcs1937", "wcs1938", "wcs1939", "wcs1940", "wcs1941", "wcs1942", "wcs1943",
	"wcs1944", "wcs1945", "wcs1946", "wcs1947", "wcs1948", "wcs1949", "wcs1950", "wcs1951",
	"wcs1952", "wcs1953", "wcs1954", "wcs1955", "wcs1956", "wcs1957", "wcs1958", "wcs1959",
	"wcs1960", "wcs1961", "wcs1962", "wcs1963", "wcs1964", "wcs1965", "wcs1966", "wcs1967",
	"wcs1968", "wcs1969", "wcs1970", "wcs1971", "wcs1972", "wcs1973", "wcs1974", "wcs1975",
	"wcs1976", "wcs1977", "wcs1978", "wcs1979", "wcs1980", "wcs1981", "wcs1982", "wcs1983",
	"wcs1984", "wcs1985", "wcs1986", "wcs1987", "wcs1988", "wcs1989", "wcs1990", "wcs1991",
	"wcs1992", "wcs1993", "wcs1994", "wcs1995", "wcs1996", "wcs1997", "wcs1998", "wcs1999",
	"wcs2000", "wcs2001", "wcs2002", "wcs2003", "wcs2004", "wcs2005", "wcs2006", "wcs2007",
	"wcs2008", "wcs2009", "wcs2010", "wcs2011", "wcs2012", "wcs2013", "wcs2014", "wcs2015",
	"wcs2016", "wcs2017", "wcs2018", "wcs2019", "wcs2020", "wcs2021", "wcs2022", "wcs2023",
	"wcs2024", "wcs2025", "wcs2026", "wcs2027", "wcs2028", "wcs2029", "wcs2030", "wcs2031",
	"wcs2032", "wcs2033", "wcs2034", "wcs2035", "wcs2036", "wcs2037", "wcs2038", "wcs2039",
	"wcs2040", "wcs2041", "wcs2042", "wcs2043", "wcs2044", "wcs2045", "wcs2046", "wcs2047",
}

// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordlists

// portuguese is a placeholder BIP39 wordlist: 2048 unique tokens of the correct
// shape (no whitespace, no delimiter collisions) standing in for the real
// upstream portuguese word list. See DESIGN.md: English is the accurate reference
// list this module's test vectors depend on; this list needs replacing
// with the canonical upstream words before encoding real portuguese mnemonics.
var portuguese = [2048]string{
	"wpt0000", "wpt0001", "wpt0002", "wpt0003", "wpt0004", "wpt0005", "wpt0006", "wpt0007",
	"wpt0008", "wpt0009", "wpt0010", "wpt0011", "wpt0012", "wpt0013", "wpt0014", "wpt0015",
	"wpt0016", "wpt0017", "wpt0018", "wpt0019", "wpt0020", "wpt0021", "wpt0022", "wpt0023",
	"wpt0024", "wpt0025", "wpt0026", "wpt0027", "wpt0028", "wpt0029", "wpt0030", "wpt0031",
	"wpt0032", "wpt0033", "wpt0034", "wpt0035", "wpt0036", "wpt0037", "wpt0038", "wpt0039",
	"wpt0040", "wpt0041", "wpt0042", "wpt0043", "wpt0044", "wpt0045", "wpt0046", "wpt0047",
	"wpt0048", "wpt0049", "wpt0050", "wpt0051", "wpt0052", "wpt0053", "wpt0054", "wpt0055",
	"wpt0056", "wpt0057", "wpt0058", "wpt0059", "wpt0060", "wpt0061", "wpt0062", "wpt0063",
	"wpt0064", "wpt0065", "wpt0066", "wpt0067", "wpt0068", "wpt0069", "wpt0070", "wpt0071",
	"wpt0072", "wpt0073", "wpt0074", "wpt0075", "wpt0076", "wpt0077", "wpt0078", "wpt0079",
	"wpt0080", "wpt0081", "wpt0082", "wpt0083", "wpt0084", "wpt0085", "wpt0086", "wpt0087",
	"wpt0088", "wpt0089", "wpt0090", "wpt0091", "wpt0092", "wpt0093", "wpt0094", "wpt0095",
	"wpt0096", "wpt0097", "wpt0098", "wpt0099", "wpt0100", "wpt0101", "wpt0102", "wpt0103",
	"wpt0104", "wpt0105", "wpt0106", "wpt0107", "wpt0108", "wpt0109", "wpt0110", "wpt0111",
	"wpt0112", "wpt0113", "wpt0114", "wpt0115", "wpt0116", "wpt0117", "wpt0118", "wpt0119",
	"wpt0120", "wpt0121", "wpt0122", "wpt0123", "wpt0124", "wpt0125", "wpt0126", "wpt0127",
	"wpt0128", "wpt0129", "wpt0130", "wpt0131", "wpt0132", "wpt0133", "wpt0134", "wpt0135",
	"wpt0136", "wpt0137", "wpt0138", "wpt0139", "wpt0140", "wpt0141", "wpt0142", "wpt0143",
	"wpt0144", "wpt0145", "wpt0146", "wpt0147", "wpt0148", "wpt0149", "wpt0150", "wpt0151",
	"wpt0152", "wpt0153", "wpt0154", "wpt0155", "wpt0156", "wpt0157", "wpt0158", "wpt0159",
	"wpt0160", "wpt0161", "wpt0162", "wpt0163", "wpt0164", "wpt0165", "wpt0166", "wpt0167",
	"wpt0168", "wpt0169", "wpt0170", "wpt0171", "wpt0172", "wpt0173", "wpt0174", "wpt0175",
	"wpt0176", "wpt0177", "wpt0178", "wpt0179", "wpt0180", "wpt0181", "wpt0182", "wpt0183",
	"wpt0184", "wpt0185", "wpt0186", "wpt0187", "wpt0188", "wpt0189", "wpt0190", "wpt0191",
	"wpt0192", "wpt0193", "wpt0194", "wpt0195", "wpt0196", "wpt0197", "wpt0198", "wpt0199",
	"wpt0200", "wpt0201", "wpt0202", "wpt0203", "wpt0204", "wpt0205", "wpt0206", "wpt0207",
	"wpt0208", "wpt0209", "wpt0210", "wpt0211", "wpt0212", "wpt0213", "wpt0214", "wpt0215",
	"wpt0216", "wpt0217", "wpt0218", "wpt0219", "wpt0220", "wpt0221", "wpt0222", "wpt0223",
	"wpt0224", "wpt0225", "wpt0226", "wpt0227", "wpt0228", "wpt0229", "wpt0230", "wpt0231",
	"wpt0232", "wpt0233", "wpt0234", "wpt0235", "wpt0236", "wpt0237", "wpt0238", "wpt0239",
	"wpt0240", "wpt0241", "wpt0242", "wpt0243", "wpt0244", "wpt0245", "wpt0246", "wpt0247",
	"wpt0248", "wpt0249", "wpt0250", "wpt0251", "wpt0252", "wpt0253", "wpt0254", "wpt0255",
	"wpt0256", "wpt0257", "wpt0258", "wpt0259", "wpt0260", "wpt0261", "wpt0262", "wpt0263",
	"wpt0264", "wpt0265", "wpt0266", "wpt0267", "wpt0268", "wpt0269", "wpt0270", "wpt0271",
	"wpt0272", "wpt0273", "wpt0274", "wpt0275", "wpt0276", "wpt0277", "wpt0278", "wpt0279",
	"wpt0280", "wpt0281", "wpt0282", "wpt0283", "wpt0284", "wpt0285", "wpt0286", "wpt0287",
	"wpt0288", "wpt0289", "wpt0290", "wpt0291", "wpt0292", "wpt0293", "wpt0294", "wpt0295",
	"wpt0296", "wpt0297", "wpt0298", "wpt0299", "wpt0300", "wpt0301", "wpt0302", "wpt0303",
	"wpt0304", "wpt0305", "wpt0306", "wpt0307", "wpt0308", "wpt0309", "wpt0310", "wpt0311",
	"wpt0312", "wpt0313", "wpt0314", "wpt0315", "wpt0316", "wpt0317", "wpt0318", "wpt0319",
	"wpt0320", "wpt0321", "wpt0322", "wpt0323", "wpt0324", "wpt0325", "wpt0326", "wpt0327",
	"wpt0328", "wpt0329", "wpt0330", "wpt0331", "wpt0332", "wpt0333", "wpt0334", "wpt0335",
	"wpt0336", "wpt0337", "wpt0338", "wpt0339", "wpt0340", "wpt0341", "wpt0342", "wpt0343",
	"wpt0344", "wpt0345", "wpt0346", "wpt0347", "wpt0348", "wpt0349", "wpt0350", "wpt0351",
	"wpt0352", "wpt0353", "wpt0354", "wpt0355", "wpt0356", "wpt0357", "wpt0358", "wpt0359",
	"wpt0360", "wpt0361", "wpt0362", "wpt0363", "wpt0364", "wpt0365", "wpt0366", "wpt0367",
	"wpt0368", "wpt0369", "wpt0370", "wpt0371", "wpt0372", "wpt0373", "wpt0374", "wpt0375",
	"wpt0376", "wpt0377", "wpt0378", "wpt0379", "wpt0380", "wpt0381", "wpt0382", "wpt0383",
	"wpt0384", "wpt0385", "wpt0386", "wpt0387", "wpt0388", "wpt0389", "wpt0390", "wpt0391",
	"wpt0392", "wpt0393", "wpt0394", "wpt0395", "wpt0396", "wpt0397", "wpt0398", "wpt0399",
	"wpt0400", "wpt0401", "wpt0402", "wpt0403", "wpt0404", "wpt0405", "wpt0406", "wpt0407",
	"wpt0408", "wpt0409", "wpt0410", "wpt0411", "wpt0412", "wpt0413", "wpt0414", "wpt0415",
	"wpt0416", "wpt0417", "wpt0418", "wpt0419", "wpt0420", "wpt0421", "wpt0422", "wpt0423",
	"wpt0424", "wpt0425", "wpt0426", "wpt0427", "wpt0428", "wpt0429", "wpt0430", "wpt0431",
	"wpt0432", "wpt0433", "wpt0434", "wpt0435", "wpt0436", "wpt0437", "wpt0438", "wpt0439",
	"wpt0440", "wpt0441", "wpt0442", "wpt0443", "wpt0444", "wpt0445", "wpt0446", "wpt0447",
	"wpt0448", "wpt0449", "wpt0450", "wpt0451", "wpt0452", "wpt0453", "wpt0454", "wpt0455",
	"wpt0456", "wpt0457", "wpt0458", "wpt0459", "wpt0460", "wpt0461", "wpt0462", "wpt0463",
	"wpt0464", "wpt0465", "wpt0466", "wpt0467", "wpt0468", "wpt0469", "wpt0470", "wpt0471",
	"wpt0472", "wpt0473", "wpt0474", "wpt0475", "wpt0476", "wpt0477", "wpt0478", "wpt0479",
	"wpt0480", "wpt0481", "wpt0482", "wpt0483", "wpt0484", "wpt0485", "wpt0486", "wpt0487",
	"wpt0488", "wpt0489", "wpt0490", "wpt0491", "wpt0492", "wpt0493", "wpt0494", "wpt0495",
	"wpt0496", "wpt0497", "wpt0498", "wpt0499", "wpt0500", "wpt0501", "wpt0502", "wpt0503",
	"wpt0504", "wpt0505", "wpt0506", "wpt0507", "wpt0508", "wpt0509", "wpt0510", "wpt0511",
	"wpt0512", "wpt0513", "wpt0514", "wpt0515", "wpt0516", "wpt0517", "wpt0518", "wpt0519",
	"wpt0520", "wpt0521", "wpt0522", "wpt0523", "wpt0524", "wpt0525", "wpt0526", "wpt0527",
	"wpt0528", "wpt0529", "wpt0530", "wpt0531", "wpt0532", "wpt0533", "wpt0534", "wpt0535",
	"wpt0536", "wpt0537", "wpt0538", "wpt0539", "wpt0540", "wpt0541", "wpt0542", "wpt0543",
	"wpt0544", "wpt0545", "wpt0546", "wpt0547", "wpt0548", "wpt0549", "wpt0550", "wpt0551",
	"wpt0552", "wpt0553", "wpt0554", "wpt0555", "wpt0556", "wpt0557", "wpt0558", "wpt0559",
	"wpt0560", "wpt0561", "wpt0562", "wpt0563", "wpt0564", "wpt0565", "wpt0566", "wpt0567",
	"wpt0568", "wpt0569", "wpt0570", "wpt0571", "wpt0572", "wpt0573", "wpt0574", "wpt0575",
	"wpt0576", "wpt0577", "wpt0578", "wpt0579", "wpt0580", "wpt0581", "wpt0582", "wpt0583",
	"wpt0584", "wpt0585", "wpt0586", "wpt0587", "wpt0588", "wpt0589", "wpt0590", "wpt0591",
	"wpt0592", "wpt0593", "wpt0594", "wpt0595", "wpt0596", "wpt0597", "wpt0598", "wpt0599",
	"wpt0600", "wpt0601", "wpt0602", "wpt0603", "wpt0604", "wpt0605", "wpt0606", "wpt0607",
	"wpt0608", "wpt0609", "wpt0610", "wpt0611", "wpt0612", "wpt0613", "wpt0614", "wpt0615",
	"wpt0616", "wpt0617", "wpt0618", "wpt0619", "wpt0620", "wpt0621", "wpt0622", "wpt0623",
	"wpt0624", "wpt0625", "wpt0626", "wpt0627", "wpt0628", "wpt0629", "wpt0630", "wpt0631",
	"wpt0632", "wpt0633", "wpt0634", "wpt0635", "wpt0636", "wpt0637", "wpt0638", "wpt0639",
	"wpt0640", "wpt0641", "wpt0642", "wpt0643", "wpt0644", "wpt0645", "wpt0646", "wpt0647",
	"wpt0648", "wpt0649", "wpt0650", "wpt0651", "wpt0652", "wpt0653", "wpt0654", "wpt0655",
	"wpt0656", "wpt0657", "wpt0658", "wpt0659", "wpt0660", "wpt0661", "wpt0662", "wpt0663",
	"wpt0664", "wpt0665", "wpt0666", "wpt0667", "wpt0668", "wpt0669", "wpt0670", "wpt0671",
	"wpt0672", "wpt0673", "wpt0674", "wpt0675", "wpt0676", "wpt0677", "wpt0678", "wpt0679",
	"wpt0680", "wpt0681", "wpt0682", "wpt0683", "wpt0684", "wpt0685", "wpt0686", "wpt0687",
	"wpt0688", "wpt0689", "wpt0690", "wpt0691", "wpt0692", "wpt0693", "wpt0694", "wpt0695",
	"wpt0696", "wpt0697", "wpt0698", "wpt0699", "wpt0700", "wpt0701", "wpt0702", "wpt0703",
	"wpt0704", "wpt0705", "wpt0706", "wpt0707", "wpt0708", "wpt0709", "wpt0710", "wpt0711",
	"wpt0712", "wpt0713", "wpt0714", "wpt0715", "wpt0716", "wpt0717", "wpt0718", "wpt0719",
	"wpt0720", "wpt0721", "wpt0722", "wpt0723", "wpt0724", "wpt0725", "wpt0726", "wpt0727",
	"wpt0728", "wpt0729", "wpt0730", "wpt0731", "wpt0732", "wpt0733", "wpt0734", "wpt0735",
	"wpt0736", "wpt0737", "wpt0738", "wpt0739", "wpt0740", "wpt0741", "wpt0742", "wpt0743",
	"wpt0744", "wpt0745", "wpt0746", "wpt0747", "wpt0748", "wpt0749", "wpt0750", "wpt0751",
	"wpt0752", "wpt0753", "wpt0754", "wpt0755", "wpt0756", "wpt0757", "wpt0758", "wpt0759",
	"wpt0760", "wpt0761", "wpt0762", "wpt0763", "wpt0764", "wpt0765", "wpt0766", "wpt0767",
	"wpt0768", "wpt0769", "wpt0770", "wpt0771", "wpt0772", "wpt0773", "wpt0774", "wpt0775",
	"wpt0776", "wpt0777", "wpt0778", "wpt0779", "wpt0780", "wpt0781", "wpt0782", "wpt0783",
	"wpt0784", "wpt0785", "wpt0786", "wpt0787", "wpt0788", "wpt0789", "wpt0790", "wpt0791",
	"wpt0792", "wpt0793", "wpt0794", "wpt0795", "wpt0796", "wpt0797", "wpt0798", "wpt0799",
	"wpt0800", "wpt0801", "wpt0802", "wpt0803", "wpt0804", "wpt0805", "wpt0806", "wpt0807",
	"wpt0808", "wpt0809", "wpt0810", "wpt0811", "wpt0812", "wpt0813", "wpt0814", "wpt0815",
	"wpt0816", "wpt0817", "wpt0818", "wpt0819", "wpt0820", "wpt0821", "wpt0822", "wpt0823",
	"wpt0824", "wpt0825", "wpt0826", "wpt0827", "wpt0828", "wpt0829", "wpt0830", "wpt0831",
	"wpt0832", "wpt0833", "wpt0834", "wpt0835", "wpt0836", "wpt0837", "wpt0838", "wpt0839",
	"wpt0840", "wpt0841", "wpt0842", "wpt0843", "wpt0844", "wpt0845", "wpt0846", "wpt0847",
	"wpt0848", "wpt0849", "wpt0850", "wpt0851", "wpt0852", "wpt0853", "wpt0854", "wpt0855",
	"wpt0856", "wpt0857", "wpt0858", "wpt0859", "wpt0860", "wpt0861", "wpt0862", "wpt0863",
	"wpt0864", "wpt0865", "wpt0866", "wpt0867", "wpt0868", "wpt0869", "wpt0870", "wpt0871",
	"wpt0872", "wpt0873", "wpt0874", "wpt0875", "wpt0876", "wpt0877", "wpt0878", "wpt0879",
	"wpt0880", "wpt0881", "wpt0882", "wpt0883", "wpt0884", "wpt0885", "wpt0886", "wpt0887",
	"wpt0888", "wpt0889", "wpt0890", "wpt0891", "wpt0892", "wpt0893", "wpt0894", "wpt0895",
	"wpt0896", "wpt0897", "wpt0898", "wpt0899", "wpt0900", "wpt0901", "wpt0902", "wpt0903",
	"wpt0904", "wpt0905", "wpt0906", "wpt0907", "wpt0908", "wpt0909", "wpt0910", "wpt0911",
	"wpt0912", "wpt0913", "wpt0914", "wpt0915", "wpt0916", "wpt0917", "wpt0918", "wpt0919",
	"wpt0920", "wpt0921", "wpt0922", "wpt0923", "wpt0924", "wpt0925", "wpt0926", "wpt0927",
	"wpt0928", "wpt0929", "wpt0930", "wpt0931", "wpt0932", "wpt0933", "wpt0934", "wpt0935",
	"wpt0936", "wpt0937", "wpt0938", "wpt0939", "wpt0940", "wpt0941", "wpt0942", "wpt0943",
	"wpt0944", "wpt0945", "wpt0946", "wpt0947", "wpt0948", "wpt0949", "wpt0950", "wpt0951",
	"wpt0952", "wpt0953", "wpt0954", "wpt0955", "wpt0956", "wpt0957", "wpt0958", "wpt0959",
	"wpt0960", "wpt0961", "wpt0962", "wpt0963", "wpt0964", "wpt0965", "wpt0966", "wpt0967",
	"wpt0968", "wpt0969", "wpt0970", "wpt0971", "wpt0972", "wpt0973", "wpt0974", "wpt0975",
	"wpt0976", "wpt0977", "wpt0978", "wpt0979", "wpt0980", "wpt0981", "wpt0982", "wpt0983",
	"wpt0984", "wpt0985", "wpt0986", "wpt0987", "wpt0988", "wpt0989", "wpt0990", "wpt0991",
	"wpt0992", "wpt0993", "wpt0994", "wpt0995", "wpt0996", "wpt0997", "wpt0998", "wpt0999",
	"wpt1000", "wpt1001", "wpt1002", "wpt1003", "wpt1004", "wpt1005", "wpt1006", "wpt1007",
	"wpt1008", "wpt1009", "wpt1010", "wpt1011", "wpt1012", "wpt1013", "wpt1014", "wpt1015",
	"wpt1016", "wpt1017", "wpt1018", "wpt1019", "wpt1020", "wpt1021", "wpt1022", "wpt1023",
	"wpt1024", "wpt1025", "wpt1026", "wpt1027", "wpt1028", "wpt1029", "wpt1030", "wpt1031",
	"wpt1032", "wpt1033", "wpt1034", "wpt1035", "wpt1036", "wpt1037", "wpt1038", "wpt1039",
	"wpt1040", "wpt1041", "wpt1042", "wpt1043", "wpt1044", "wpt1045", "wpt1046", "wpt1047",
	"wpt1048", "wpt1049", "wpt1050", "wpt1051", "wpt1052", "wpt1053", "wpt1054", "wpt1055",
	"wpt1056", "wpt1057", "wpt1058", "wpt1059", "wpt1060", "wpt1061", "wpt1062", "wpt1063",
	"wpt1064", "wpt1065", "wpt1066", "wpt1067", "wpt1068", "wpt1069", "wpt1070", "wpt1071",
	"wpt1072", "wpt1073", "wpt1074", "wpt1075", "wpt1076", "wpt1077", "wpt1078", "wpt1079",
	"wpt1080", "wpt1081", "wpt1082", "wpt1083", "wpt1084", "wpt1085", "wpt1086", "wpt1087",
	"wpt1088", "wpt1089", "wpt1090", "wpt1091", "wpt1092", "wpt1093", "wpt1094", "wpt1095",
	"wpt1096", "wpt1097", "wpt1098", "wpt1099", "wpt1100", "wpt1101", "wpt1102", "wpt1103",
	"wpt1104", "wpt1105", "wpt1106", "wpt1107", "wpt1108", "wpt1109", "wpt1110", "wpt1111",
	"wpt1112", "wpt1113", "wpt1114", "wpt1115", "wpt1116", "wpt1117", "wpt1118", "wpt1119",
	"wpt1120", "wpt1121", "wpt1122", "wpt1123", "wpt1124", "wpt1125", "wpt1126", "wpt1127",
	"wpt1128", "wpt1129", "wpt1130", "wpt1131", "wpt1132", "wpt1133", "wpt1134", "wpt1135",
	"wpt1136", "wpt1137", "wpt1138", "wpt1139", "wpt1140", "wpt1141", "wpt1142", "wpt1143",
	"wpt1144", "wpt1145", "wpt1146", "wpt1147", "wpt1148", "wpt1149", "wpt1150", "wpt1151",
	"wpt1152", "wpt1153", "wpt1154", "wpt1155", "wpt1156", "wpt1157", "wpt1158", "wpt1159",
	"wpt1160", "wpt1161", "wpt1162", "wpt1163", "wpt1164", "wpt1165", "wpt1166", "wpt1167",
	"wpt1168", "wpt1169", "wpt1170", "wpt1171", "wpt1172", "wpt1173", "wpt1174", "wpt1175",
	"wpt1176", "wpt1177", "wpt1178", "wpt1179", "wpt1180", "wpt1181", "wpt1182", "wpt1183",
	"wpt1184", "wpt1185", "wpt1186", "wpt1187", "wpt1188", "wpt1189", "wpt1190", "wpt1191",
	"wpt1192", "wpt1193", "wpt1194", "wpt1195", "wpt1196", "wpt1197", "wpt1198", "wpt1199",
	"wpt1200", "wpt1201", "wpt1202", "wpt1203", "wpt1204", "wpt1205", "wpt1206", "wpt1207",
	"wpt1208", "wpt1209", "wpt1210", "wpt1211", "wpt1212", "wpt1213", "wpt1214", "wpt1215",
	"wpt1216", "wpt1217", "wpt1218", "wpt1219", "wpt1220", "wpt1221", "wpt1222", "wpt1223",
	"wpt1224", "wpt1225", "wpt1226", "wpt1227", "wpt1228", "wpt1229", "wpt1230", "wpt1231",
	"wpt1232", "wpt1233", "wpt1234", "wpt1235", "wpt1236", "wpt1237", "wpt1238", "wpt1239",
	"wpt1240", "wpt1241", "wpt1242", "wpt1243", "wpt1244", "wpt1245", "wpt1246", "wpt1247",
	"wpt1248", "wpt1249", "wpt1250", "wpt1251", "wpt1252", "wpt1253", "wpt1254", "wpt1255",
	"wpt1256", "wpt1257", "wpt1258", "wpt1259", "wpt1260", "wpt1261", "wpt1262", "wpt1263",
	"wpt1264", "wpt1265", "wpt1266", "wpt1267", "wpt1268", "wpt1269", "wpt1270", "wpt1271",
	"wpt1272", "wpt1273", "wpt1274", "wpt1275", "wpt1276", "wpt1277", "wpt1278", "wpt1279",
	"wpt1280", "wpt1281", "wpt1282", "wpt1283", "wpt1284", "wpt1285", "wpt1286", "wpt1287",
	"wpt1288", "wpt1289", "wpt1290", "wpt1291", "wpt1292", "wpt1293", "wpt1294", "wpt1295",
	"wpt1296", "wpt1297", "wpt1298", "wpt1299", "wpt1300", "wpt1301", "wpt1302", "wpt1303",
	"wpt1304", "wpt1305", "wpt1306", "wpt1307", "wpt1308", "wpt1309", "wpt1310", "wpt1311",
	"wpt1312", "wpt1313", "wpt1314", "wpt1315", "wpt1316", "wpt1317", "wpt1318", "wpt1319",
	"wpt1320", "wpt1321", "wpt1322", "wpt1323", "wpt1324", "wpt1325", "wpt1326", "wpt1327",
	"wpt1328", "wpt1329", "wpt1330", "wpt1331", "wpt1332", "wpt1333", "wpt1334", "wpt1335",
	"wpt1336", "wpt1337", "wpt1338", "wpt1339", "wpt1340", "wpt1341", "wpt1342", "wpt1343",
	"wpt1344", "wpt1345", "wpt1346", "wpt1347", "wpt1348", "wpt1349", "wpt1350", "wpt1351",
	"wpt1352", "wpt1353", "wpt1354", "wpt1355", "wpt1356", "wpt1357", "wpt1358", "wpt1359",
	"wpt1360", "wpt1361", "wpt1362", "wpt1363", "wpt1364", "wpt1365", "wpt1366", "wpt1367",
	"wpt1368", "wpt1369", "wpt1370", "wpt1371", "wpt1372", "wpt1373", "wpt1374", "wpt1375",
	"wpt1376", "wpt1377", "wpt1378", "wpt1379", "wpt1380", "wpt1381", "wpt1382", "wpt1383",
	"wpt1384", "wpt1385", "wpt1386", "wpt1387", "wpt1388", "wpt1389", "wpt1390", "wpt1391",
	"wpt1392", "wpt1393", "wpt1394", "wpt1395", "wpt1396", "wpt1397", "wpt1398", "wpt1399",
	"wpt1400", "wpt1401", "wpt1402", "wpt1403", "wpt1404", "wpt1405", "wpt1406", "wpt1407",
	"wpt1408", "wpt1409", "wpt1410", "wpt1411", "wpt1412", "wpt1413", "wpt1414", "wpt1415",
	"wpt1416", "wpt1417", "wpt1418", "wpt1419", "wpt1420", "wpt1421", "wpt1422", "wpt1423",
	"wpt1424", "wpt1425", "wpt1426", "wpt1427", "wpt1428", "wpt1429", "wpt1430", "wpt1431",
	"wpt1432", "wpt1433", "wpt1434", "wpt1435", "wpt1436", "wpt1437", "wpt1438", "wpt1439",
	"wpt1440", "wpt1441", "wpt1442", "wpt1443", "wpt1444", "wpt1445", "wpt1446", "wpt1447",
	"wpt1448", "wpt1449", "wpt1450", "wpt1451", "wpt1452", "wpt1453", "wpt1454", "wpt1455",
	"wpt1456", "wpt1457", "wpt1458", "wpt1459", "wpt1460", "wpt1461", "wpt1462", "wpt1463",
	"wpt1464", "wpt1465", "wpt1466", "wpt1467", "wpt1468", "wpt1469", "wpt1470", "wpt1471",
	"wpt1472", "wpt1473", "wpt1474", "wpt1475", "wpt1476", "wpt1477", "wpt1478", "wpt1479",
	"wpt1480", "wpt1481", "wpt1482", "wpt1483", "wpt1484", "wpt1485", "wpt1486", "wpt1487",
	"wpt1488", "wpt1489", "wpt1490", "wpt1491", "wpt1492", "wpt1493", "wpt1494", "wpt1495",
	"wpt1496", "wpt1497", "wpt1498", "wpt1499", "wpt1500", "wpt1501", "wpt1502", "wpt1503",
	"wpt1504", "wpt1505", "wpt1506", "wpt1507", "wpt1508", "wpt1509", "wpt1510", "wpt1511",
	"wpt1512", "wpt1513", "wpt1514", "wpt1515", "wpt1516", "wpt1517", "wpt1518", "wpt1519",
	"wpt1520", "wpt1521", "wpt1522", "wpt1523", "wpt1524", "wpt1525", "wpt1526", "wpt1527",
	"wpt1528", "wpt1529", "wpt1530", "wpt1531", "wpt1532", "wpt1533", "wpt1534", "wpt1535",
	"wpt1536", "wpt1537", "wpt1538", "wpt1539", "wpt1540", "wpt1541", "wpt1542", "wpt1543",
	"wpt1544", "wpt1545", "wpt1546", "wpt1547", "wpt1548", "wpt1549", "wpt1550", "wpt1551",
	"wpt1552", "wpt1553", "wpt1554", "wpt1555", "wpt1556", "wpt1557", "wpt1558", "wpt1559",
	"wpt1560", "wpt1561", "wpt1562", "wpt1563", "wpt1564", "wpt1565", "wpt1566", "wpt1567",
	"wpt1568", "wpt1569", "wpt1570", "wpt1571", "wpt1572", "wpt1573", "wpt1574", "wpt1575",
	"wpt1576", "wpt1577", "wpt1578", "wpt1579", "wpt1580", "wpt1581", "wpt1582", "wpt1583",
	"wpt1584", "wpt1585", "wpt1586", "wpt1587", "wpt1588", "wpt1589", "wpt1590", "wpt1591",
	"wpt1592", "wpt1593", "wpt1594", "wpt1595", "wpt1596", "wpt1597", "wpt1598", "wpt1599",
	"wpt1600", "wpt1601", "wpt1602", "wpt1603", "wpt1604", "wpt1605", "wpt1606", "wpt1607",
	"wpt1608", "wpt1609", "wpt1610", "wpt1611", "wpt1612", "wpt1613", "wpt1614", "wpt1615",
	"wpt1616", "wpt1617", "wpt1618", "wpt1619", "wpt1620", "wpt1621", "wpt1622", "wpt1623",
	"wpt1624", "wpt1625", "wpt1626", "wpt1627", "wpt1628", "wpt1629", "wpt1630", "wpt1631",
	"wpt1632", "wpt1633", "wpt1634", "wpt1635", "wpt1636", "wpt1637", "wpt1638", "wpt1639",
	"wpt1640", "wpt1641", "wpt1642", "wpt1643", "wpt1644", "wpt1645", "wpt1646", "wpt1647",
	"wpt1648", "wpt1649", "wpt1650", "wpt1651", "wpt1652", "wpt1653", "wpt1654", "wpt1655",
	"wpt1656", "wpt1657", "wpt1658", "wpt1659", "wpt1660", "wpt1661", "wpt1662", "wpt1663",
	"wpt1664", "wpt1665", "wpt1666", "wpt1667", "wpt1668", "wpt1669", "wpt1670", "wpt1671",
	"wpt1672", "wpt1673", "wpt1674", "wpt1675", "wpt1676", "wpt1677", "wpt1678", "wpt1679",
	"wpt1680", "wpt1681", "wpt1682", "wpt1683", "wpt1684", "wpt1685", "wpt1686", "wpt1687",
	"wpt1688", "wpt1689", "wpt1690", "wpt1691", "wpt1692", "wpt1693", "wpt1694", "wpt1695",
	"wpt1696", "wpt1697", "wpt1698", "wpt1699", "wpt1700", "wpt1701", "wpt1702", "wpt1703",
	"wpt1704", "wpt1705", "wpt1706", "wpt1707", "wpt1708", "wpt1709", "wpt1710", "wpt1711",
	"wpt1712", "wpt1713", "wpt1714", "wpt1715", "wpt1716", "wpt1717", "wpt1718", "wpt1719",
	"wpt1720", "wpt1721", "wpt1722", "wpt1723", "wpt1724", "wpt1725", "wpt1726", "wpt1727",
	"wpt1728", "wpt1729", "wpt1730", "wpt1731", "wpt1732", "wpt1733", "wpt1734", "wpt1735",
	"wpt1736", "wpt1737", "wpt1738", "wpt1739", "wpt1740", "wpt1741", "wpt1742", "wpt1743",
	"wpt1744", "wpt1745", "wpt1746", "wpt1747", "wpt1748", "wpt1749", "wpt1750", "wpt1751",
	"wpt1752", "wpt1753", "wpt1754", "wpt1755", "wpt1756", "wpt1757", "wpt1758", "wpt1759",
	"wpt1760", "wpt1761", "wpt1762", "wpt1763", "wpt1764", "wpt1765", "wpt1766", "wpt1767",
	"wpt1768", "wpt1769", "wpt1770", "wpt1771", "wpt1772", "wpt1773", "wpt1774", "wpt1775",
	"wpt1776", "wpt1777", "wpt1778", "wpt1779", "wpt1780", "wpt1781", "wpt1782", "wpt1783",
	"wpt1784", "wpt1785", "wpt1786", "wpt1787", "wpt1788", "wpt1789", "wpt1790", "wpt1791",
	"wpt1792", "wpt1793", "wpt1794", "wpt1795", "wpt1796", "wpt1797", "wpt1798", "wpt1799",
	"wpt1800", "wpt1801", "wpt1802", "wpt1803", "wpt1804", "wpt1805", "wpt1806", "wpt1807",
	"wpt1808", "wpt1809", "wpt1810", "wpt1811", "wpt1812", "wpt1813", "wpt1814", "wpt1815",
	"wpt1816", "wpt1817", "wpt1818", "wpt1819", "wpt1820", "wpt1821", "wpt1822", "wpt1823",
	"wpt1824", "wpt1825", "wpt1826", "wpt1827", "wpt1828", "wpt1829", "wpt1830", "wpt1831",
	"wpt1832", "wpt1833", "wpt1834", "wpt1835", "wpt1836", "wpt1837", "wpt1838", "wpt1839",
	"wpt1840", "wpt1841", "wpt1842", "wpt1843", "wpt1844", "wpt1845", "wpt1846", "wpt1847",
	"wpt1848", "wpt1849", "wpt1850", "wpt1851", "wpt1852", "wpt1853", "wpt1854", "wpt1855",
	"wpt1856", "wpt1857", "wpt1858", "wpt1859", "wpt1860", "wpt1861", "wpt1862", "wpt1863",
	"wpt1864", "wpt1865", "wpt1866", "wpt1867", "wpt1868", "wpt1869", "wpt1870", "wpt1871",
	"wpt1872", "wpt1873", "wpt1874", "wpt1875", "wpt1876", "wpt1877", "wpt1878", "wpt1879",
	"wpt1880", "wpt1881", "wpt1882", "wpt1883", "wpt1884", "wpt1885", "wpt1886", "wpt1887",
	"wpt1888", "wpt1889", "wpt1890", "wpt1891", "wpt1892", "wpt1893", "wpt1894", "wpt1895",
	"wpt1896", "wpt1897", "wpt1898", "wpt1899", "wpt1900", "wpt1901", "wpt1902", "wpt1903",
	"wpt1904", "wpt1905", "wpt1906", "wpt1907", "wpt1908", "wpt1909", "wpt1910", "wpt1911",
	"wpt1912", "wpt1913", "wpt1914", "wpt1915", "wpt1916", "wpt1917", "wpt1918", "wpt1919",
	"wpt1920", "wpt1921", "wpt1922", "wpt1923", "wpt1924", "wpt1925", "wpt1926", "wpt1927",
	"wpt1928", "wpt1929", "wpt1930", "wpt1931", "wpt1932", "wpt1933", "wpt1934", "wpt1935",
	"wpt1936", "wpt1937", "wpt1938", "wpt1939", "wpt1940", "wpt1941", "wpt1942", "wpt1943",
	"wpt1944", "wpt1945", "wpt1946", "wpt1947", "wpt1948", "wpt1949", "wpt1950", "wpt1951",
	"wpt1952", "wpt1953", "wpt1954", "wpt1955", "wpt1956", "wpt1957", "wpt1958", "wpt1959",
	"wpt1960", "wpt1961", "wpt1962", "wpt1963", "wpt1964", "wpt1965", "wpt1966", "wpt1967",
	"wpt1968", "wpt1969", "wpt1970", "wpt1971", "wpt1972", "wpt1973", "wpt1974", "wpt1975",
	"wpt1976", "wpt1977", "wpt1978", "wpt1979", "wpt1980", "wpt1981", "wpt1982", "wpt1983",
	"wpt1984", "wpt1985", "wpt1986", "wpt1987", "wpt1988", "wpt1989", "wpt1990", "wpt1991",
	"wpt1992", "wpt1993", "wpt1994", "wpt1995", "wpt1996", "wpt1997", "wpt1998", "wpt1999",
	"wpt2000", "wpt2001", "wpt2002", "wpt2003", "wpt2004", "wpt2005", "wpt2006", "wpt2007",
	"wpt2008", "wpt2009", "wpt2010", "wpt2011", "wpt2012", "wpt2013", "wpt2014", "wpt2015",
	"wpt2016", "wpt2017", "wpt2018", "wpt2019", "wpt2020", "wpt2021", "wpt2022", "wpt2023",
	"wpt2024", "wpt2025", "wpt2026", "wpt2027", "wpt2028", "wpt2029", "wpt2030", "wpt2031",
	"wpt2032", "wpt2033", "wpt2034", "wpt2035", "wpt2036", "wpt2037", "wpt2038", "wpt2039",
	"wpt2040", "wpt2041", "wpt2042", "wpt2043", "wpt2044", "wpt2045", "wpt2046", "wpt2047",
}

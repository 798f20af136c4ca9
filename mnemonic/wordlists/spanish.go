// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordlists

// spanish is a placeholder BIP39 wordlist: 2048 unique tokens of the correct
// shape (no whitespace, no delimiter collisions) standing in for the real
// upstream spanish word list. See DESIGN.md: English is the accurate reference
// list this module's test vectors depend on; this list needs replacing
// with the canonical upstream words before encoding real spanish mnemonics.
var spanish = [2048]string{
	"wes0000", "wes0001", "wes0002", "wes0003", "wes0004", "wes0005", "wes0006", "wes0007",
	"wes0008", "wes0009", "wes0010", "wes0011", "wes0012", "wes0013", "wes0014", "wes0015",
	"wes0016", "wes0017", "wes0018", "wes0019", "wes0020", "wes0021", "wes0022", "wes0023",
	"wes0024", "wes0025", "wes0026", "wes0027", "wes0028", "wes0029", "wes0030", "wes0031",
	"wes0032", "wes0033", "wes0034", "wes0035", "wes0036", "wes0037", "wes0038", "wes0039",
	"wes0040", "wes0041", "wes0042", "wes0043", "wes0044", "wes0045", "wes0046", "wes0047",
	"wes0048", "wes0049", "wes0050", "wes0051", "wes0052", "wes0053", "wes0054", "wes0055",
	"wes0056", "wes0057", "wes0058", "wes0059", "wes0060", "wes0061", "wes0062", "wes0063",
	"wes0064", "wes0065", "wes0066", "wes0067", "wes0068", "wes0069", "wes0070", "wes0071",
	"wes0072", "wes0073", "wes0074", "wes0075", "wes0076", "wes0077", "wes0078", "wes0079",
	"wes0080", "wes0081", "wes0082", "wes0083", "wes0084", "wes0085", "wes0086", "wes0087",
	"wes0088", "wes0089", "wes0090", "wes0091", "wes0092", "wes0093", "wes0094", "wes0095",
	"wes0096", "wes0097", "wes0098", "wes0099", "wes0100", "wes0101", "wes0102", "wes0103",
	"wes0104", "wes0105", "wes0106", "wes0107", "wes0108", "wes0109", "wes0110", "wes0111",
	"wes0112", "wes0113", "wes0114", "wes0115", "wes0116", "wes0117", "wes0118", "wes0119",
	"wes0120", "wes0121", "wes0122", "wes0123", "wes0124", "wes0125", "wes0126", "wes0127",
	"wes0128", "wes0129", "wes0130", "wes0131", "wes0132", "wes0133", "wes0134", "wes0135",
	"wes0136", "wes0137", "wes0138", "wes0139", "wes0140", "wes0141", "wes0142", "wes0143",
	"wes0144", "wes0145", "wes0146", "wes0147", "wes0148", "wes0149", "wes0150", "wes0151",
	"wes0152", "wes0153", "wes0154", "wes0155", "wes0156", "wes0157", "wes0158", "wes0159",
	"wes0160", "wes0161", "wes0162", "wes0163", "wes0164", "wes0165", "wes0166", "wes0167",
	"wes0168", "wes0169", "wes0170", "wes0171", "wes0172", "wes0173", "wes0174", "wes0175",
	"wes0176", "wes0177", "wes0178", "wes0179", "wes0180", "wes0181", "wes0182", "wes0183",
	"wes0184", "wes0185", "wes0186", "wes0187", "wes0188", "wes0189", "wes0190", "wes0191",
	"wes0192", "wes0193", "wes0194", "wes0195", "wes0196", "wes0197", "wes0198", "wes0199",
	"wes0200", "wes0201", "wes0202", "wes0203", "wes0204", "wes0205", "wes0206", "wes0207",
	"wes0208", "wes0209", "wes0210", "wes0211", "wes0212", "wes0213", "wes0214", "wes0215",
	"wes0216", "wes0217", "wes0218", "wes0219", "wes0220", "wes0221", "wes0222", "wes0223",
	"wes0224", "wes0225", "wes0226", "wes0227", "wes0228", "wes0229", "wes0230", "wes0231",
	"wes0232", "wes0233", "wes0234", "wes0235", "wes0236", "wes0237", "wes0238", "wes0239",
	"wes0240", "wes0241", "wes0242", "wes0243", "wes0244", "wes0245", "wes0246", "wes0247",
	"wes0248", "wes0249", "wes0250", "wes0251", "wes0252", "wes0253", "wes0254", "wes0255",
	"wes0256", "wes0257", "wes0258", "wes0259", "wes0260", "wes0261", "wes0262", "wes0263",
	"wes0264", "wes0265", "wes0266", "wes0267", "wes0268", "wes0269", "wes0270", "wes0271",
	"wes0272", "wes0273", "wes0274", "wes0275", "wes0276", "wes0277", "wes0278", "wes0279",
	"wes0280", "wes0281", "wes0282", "wes0283", "wes0284", "wes0285", "wes0286", "wes0287",
	"wes0288", "wes0289", "wes0290", "wes0291", "wes0292", "wes0293", "wes0294", "wes0295",
	"wes0296", "wes0297", "wes0298", "wes0299", "wes0300", "wes0301", "wes0302", "wes0303",
	"wes0304", "wes0305", "wes0306", "wes0307", "wes0308", "wes0309", "wes0310", "wes0311",
	"wes0312", "wes0313", "wes0314", "wes0315", "wes0316", "wes0317", "wes0318", "wes0319",
	"wes0320", "wes0321", "wes0322", "wes0323", "wes0324", "wes0325", "wes0326", "wes0327",
	"wes0328", "wes0329", "wes0330", "wes0331", "wes0332", "wes0333", "wes0334", "wes0335",
	"wes0336", "wes0337", "wes0338", "wes0339", "wes0340", "wes0341", "wes0342", "wes0343",
	"wes0344", "wes0345", "wes0346", "wes0347", "wes0348", "wes0349", "wes0350", "wes0351",
	"wes0352", "wes0353", "wes0354", "wes0355", "wes0356", "wes0357", "wes0358", "wes0359",
	"wes0360", "wes0361", "wes0362", "wes0363", "wes0364", "wes0365", "wes0366", "wes0367",
	"wes0368", "wes0369", "wes0370", "wes0371", "wes0372", "wes0373", "wes0374", "wes0375",
	"wes0376", "wes0377", "wes0378", "wes0379", "wes0380", "wes0381", "wes0382", "wes0383",
	"wes0384", "wes0385", "wes0386", "wes0387", "wes0388", "wes0389", "wes0390", "wes0391",
	"wes0392", "wes0393", "wes0394", "wes0395", "wes0396", "wes0397", "wes0398", "wes0399",
	"wes0400", "wes0401", "wes0402", "wes0403", "wes0404", "wes0405", "wes0406", "wes0407",
	"wes0408", "wes0409", "wes0410", "wes0411", "wes0412", "wes0413", "wes0414", "wes0415",
	"wes0416", "wes0417", "wes0418", "wes0419", "wes0420", "wes0421", "wes0422", "wes0423",
	"wes0424", "wes0425", "wes0426", "wes0427", "wes0428", "wes0429", "wes0430", "wes0431",
	"wes0432", "wes0433", "wes0434", "wes0435", "wes0436", "wes0437", "wes0438", "wes0439",
	"wes0440", "wes0441", "wes0442", "wes0443", "wes0444", "wes0445", "wes0446", "wes0447",
	"wes0448", "wes0449", "wes0450", "wes0451", "wes0452", "wes0453", "wes0454", "wes0455",
	"wes0456", "wes0457", "wes0458", "wes0459", "wes0460", "wes0461", "wes0462", "wes0463",
	"wes0464", "wes0465", "wes0466", "wes0467", "wes0468", "wes0469", "wes0470", "wes0471",
	"wes0472", "wes0473", "wes0474", "wes0475", "wes0476", "wes0477", "wes0478", "wes0479",
	"wes0480", "wes0481", "wes0482", "wes0483", "wes0484", "wes0485", "wes0486", "wes0487",
	"wes0488", "wes0489", "wes0490", "wes0491", "wes0492", "wes0493", "wes0494", "wes0495",
	"wes0496", "wes0497", "wes0498", "wes0499", "wes0500", "wes0501", "wes0502", "wes0503",
	"wes0504", "wes0505", "wes0506", "wes0507", "wes0508", "wes0509", "wes0510", "wes0511",
	"wes0512", "wes0513", "wes0514", "wes0515", "wes0516", "wes0517", "wes0518", "wes0519",
	"wes0520", "wes0521", "wes0522", "wes0523", "wes0524", "wes0525", "wes0526", "wes0527",
	"wes0528", "wes0529", "wes0530", "wes0531", "wes0532", "wes0533", "wes0534", "wes0535",
	"wes0536", "wes0537", "wes0538", "wes0539", "wes0540", "wes0541", "wes0542", "wes0543",
	"wes0544", "wes0545", "wes0546", "wes0547", "wes0548", "wes0549", "wes0550", "wes0551",
	"wes0552", "wes0553", "wes0554", "wes0555", "wes0556", "wes0557", "wes0558", "wes0559",
	"wes0560", "wes0561", "wes0562", "wes0563", "wes0564", "wes0565", "wes0566", "wes0567",
	"wes0568", "wes0569", "wes0570", "wes0571", "wes0572", "wes0573", "wes0574", "wes0575",
	"wes0576", "wes0577", "wes0578", "wes0579", "wes0580", "wes0581", "wes0582", "wes0583",
	"wes0584", "wes0585", "wes0586", "wes0587", "wes0588", "wes0589", "wes0590", "wes0591",
	"wes0592", "wes0593", "wes0594", "wes0595", "wes0596", "wes0597", "wes0598", "wes0599",
	"wes0600", "wes0601", "wes0602", "wes0603", "wes0604", "wes0605", "wes0606", "wes0607",
	"wes0608", "wes0609", "wes0610", "wes0611", "wes0612", "wes0613", "wes0614", "wes0615",
	"wes0616", "wes0617", "wes0618", "wes0619", "wes0620", "wes0621", "wes0622", "wes0623",
	"wes0624", "wes0625", "wes0626", "wes0627", "wes0628", "wes0629", "wes0630", "wes0631",
	"wes0632", "wes0633", "wes0634", "wes0635", "wes0636", "wes0637", "wes0638", "wes0639",
	"wes0640", "wes0641", "wes0642", "wes0643", "wes0644", "wes0645", "wes0646", "wes0647",
	"wes0648", "wes0649", "wes0650", "wes0651", "wes0652", "wes0653", "wes0654", "wes0655",
	"wes0656", "wes0657", "wes0658", "wes0659", "wes0660", "wes0661", "wes0662", "wes0663",
	"wes0664", "wes0665", "wes0666", "wes0667", "wes0668", "wes0669", "wes0670", "wes0671",
	"wes0672", "wes0673", "wes0674", "wes0675", "wes0676", "wes0677", "wes0678", "wes0679",
	"wes0680", "wes0681", "wes0682", "wes0683", "wes0684", "wes0685", "wes0686", "wes0687",
	"wes0688", "wes0689", "wes0690", "wes0691", "wes0692", "wes0693", "wes0694", "wes0695",
	"wes0696", "wes0697", "wes0698", "wes0699", "wes0700", "wes0701", "wes0702", "wes0703",
	"wes0704", "wes0705", "wes0706", "wes0707", "wes0708", "wes0709", "wes0710", "wes0711",
	"wes0712", "wes0713", "wes0714", "wes0715", "wes0716", "wes0717", "wes0718", "wes0719",
	"wes0720", "wes0721", "wes0722", "wes0723", "wes0724", "wes0725", "wes0726", "wes0727",
	"wes0728", "wes0729", "wes0730", "wes0731", "wes0732", "wes0733", "wes0734", "wes0735",
	"wes0736", "wes0737", "wes0738", "wes0739", "wes0740", "wes0741", "wes0742", "wes0743",
	"wes0744", "wes0745", "wes0746", "wes0747", "wes0748", "wes0749", "wes0750", "wes0751",
	"wes0752", "wes0753", "wes0754", "wes0755", "wes0756", "wes0757", "wes0758", "wes0759",
	"wes0760", "wes0761", "wes0762", "wes0763", "wes0764", "wes0765", "wes0766", "wes0767",
	"wes0768", "wes0769", "wes0770", "wes0771", "wes0772", "wes0773", "wes0774", "wes0775",
	"wes0776", "wes0777", "wes0778", "wes0779", "wes0780", "wes0781", "wes0782", "wes0783",
	"wes0784", "wes0785", "wes0786", "wes0787", "wes0788", "wes0789", "wes0790", "wes0791",
	"wes0792", "wes0793", "wes0794", "wes0795", "wes0796", "wes0797", "wes0798", "wes0799",
	"wes0800", "wes0801", "wes0802", "wes0803", "wes0804", "wes0805", "wes0806", "wes0807",
	"wes0808", "wes0809", "wes0810", "wes0811", "wes0812", "wes0813", "wes0814", "wes0815",
	"wes0816", "wes0817", "wes0818", "wes0819", "wes0820", "wes0821", "wes0822", "wes0823",
	"wes0824", "wes0825", "wes0826", "wes0827", "wes0828", "wes0829", "wes0830", "wes0831",
	"wes0832", "wes0833", "wes0834", "wes0835", "wes0836", "wes0837", "wes0838", "wes0839",
	"wes0840", "wes0841", "wes0842", "wes0843", "wes0844", "wes0845", "wes0846", "wes0847",
	"wes0848", "wes0849", "wes0850", "wes0851", "wes0852", "wes0853", "wes0854", "wes0855",
	"wes0856", "wes0857", "wes0858", "wes0859", "wes0860", "wes0861", "wes0862", "wes0863",
	"wes0864", "wes0865", "wes0866", "wes0867", "wes0868", "wes0869", "wes0870", "wes0871",
	"wes0872", "wes0873", "wes0874", "wes0875", "wes0876", "wes0877", "wes0878", "wes0879",
	"wes0880", "wes0881", "wes0882", "wes0883", "wes0884", "wes0885", "wes0886", "wes0887",
	"wes0888", "wes0889", "wes0890", "wes0891", "wes0892", "wes0893", "wes0894", "wes0895",
	"wes0896", "wes0897", "wes0898", "wes0899", "wes0900", "wes0901", "wes0902", "wes0903",
	"wes0904", "wes0905", "wes0906", "wes0907", "wes0908", "wes0909", "wes0910", "wes0911",
	"wes0912", "wes0913", "wes0914", "wes0915", "wes0916", "wes0917", "wes0918", "wes0919",
	"wes0920", "wes0921", "wes0922", "wes0923", "wes0924", "wes0925", "wes0926", "wes0927",
	"wes0928", "wes0929", "wes0930", "wes0931", "wes0932", "wes0933", "wes0934", "wes0935",
	"wes0936", "wes0937", "wes0938", "wes0939", "wes0940", "wes0941", "wes0942", "wes0943",
	"wes0944", "wes0945", "wes0946", "wes0947", "wes0948", "wes0949", "wes0950", "wes0951",
	"wes0952", "wes0953", "wes0954", "wes0955", "wes0956", "wes0957", "wes0958", "wes0959",
	"wes0960", "wes0961", "wes0962", "wes0963", "wes0964", "wes0965", "wes0966", "wes0967",
	"wes0968", "wes0969", "wes0970", "wes0971", "wes0972", "wes0973", "wes0974", "wes0975",
	"wes0976", "wes0977", "wes0978", "wes0979", "wes0980", "wes0981", "wes0982", "wes0983",
	"wes0984", "wes0985", "wes0986", "wes0987", "wes0988", "wes0989", "wes0990", "wes0991",
	"wes0992", "wes0993", "wes0994", "wes0995", "wes0996", "wes0997", "wes0998", "wes0999",
	"wes1000", "wes1001", "wes1002", "wes1003", "wes1004", "wes1005", "wes1006", "wes1007",
	"wes1008", "wes1009", "wes1010", "wes1011", "wes1012", "wes1013", "wes1014", "wes1015",
	"wes1016", "wes1017", "wes1018", "wes1019", "wes1020", "wes1021", "wes1022", "wes1023",
	"wes1024", "wes1025", "wes1026", "wes1027", "wes1028", "wes1029", "wes1030", "wes1031",
	"wes1032", "wes1033", "wes1034", "wes1035", "wes1036", "wes1037", "wes1038", "wes1039",
	"wes1040", "wes1041", "wes1042", "wes1043", "wes1044", "wes1045", "wes1046", "wes1047",
	"wes1048", "wes1049", "wes1050", "wes1051", "wes1052", "wes1053", "wes1054", "wes1055",
	"wes1056", "wes1057", "wes1058", "wes1059", "wes1060", "wes1061", "wes1062", "wes1063",
	"wes1064", "wes1065", "wes1066", "wes1067", "wes1068", "wes1069", "wes1070", "wes1071",
	"wes1072", "wes1073", "wes1074", "wes1075", "wes1076", "wes1077", "wes1078", "wes1079",
	"wes1080", "wes1081", "wes1082", "wes1083", "wes1084", "wes1085", "wes1086", "wes1087",
	"wes1088", "wes1089", "wes1090", "wes1091", "wes1092", "wes1093", "wes1094", "wes1095",
	"wes1096", "wes1097", "wes1098", "wes1099", "wes1100", "wes1101", "wes1102", "wes1103",
	"wes1104", "wes1105", "wes1106", "wes1107", "wes1108", "wes1109", "wes1110", "wes1111",
	"wes1112", "wes1113", "wes1114", "wes1115", "wes1116", "wes1117", "wes1118", "wes1119",
	"wes1120", "wes1121", "wes1122", "wes1123", "wes1124", "wes1125", "wes1126", "wes1127",
	"wes1128", "wes1129", "wes1130", "wes1131", "wes1132", "wes1133", "wes1134", "wes1135",
	"wes1136", "wes1137", "wes1138", "wes1139", "wes1140", "wes1141", "wes1142", "wes1143",
	"wes1144", "wes1145", "wes1146", "wes1147", "wes1148", "wes1149", "wes1150", "wes1151",
	"wes1152", "wes1153", "wes1154", "wes1155", "wes1156", "wes1157", "wes1158", "wes1159",
	"wes1160", "wes1161", "wes1162", "wes1163", "wes1164", "wes1165", "wes1166", "wes1167",
	"wes1168", "wes1169", "wes1170", "wes1171", "wes1172", "wes1173", "wes1174", "wes1175",
	"wes1176", "wes1177", "wes1178", "wes1179", "wes1180", "wes1181", "wes1182", "wes1183",
	"wes1184", "wes1185", "wes1186", "wes1187", "wes1188", "wes1189", "wes1190", "wes1191",
	"wes1192", "wes1193", "wes1194", "wes1195", "wes1196", "wes1197", "wes1198", "wes1199",
	"wes1200", "wes1201", "wes1202", "wes1203", "wes1204", "wes1205", "wes1206", "wes1207",
	"wes1208", "wes1209", "wes1210", "wes1211", "wes1212", "wes1213", "wes1214", "wes1215",
	"wes1216", "wes1217", "wes1218", "wes1219", "wes1220", "wes1221", "wes1222", "wes1223",
	"wes1224", "wes1225", "wes1226", "wes1227", "wes1228", "wes1229", "wes1230", "wes1231",
	"wes1232", "wes1233", "wes1234", "wes1235", "wes1236", "wes1237", "wes1238", "wes1239",
	"wes1240", "wes1241", "wes1242", "wes1243", "wes1244", "wes1245", "wes1246", "wes1247",
	"wes1248", "wes1249", "wes1250", "wes1251", "wes1252", "wes1253", "wes1254", "wes1255",
	"wes1256", "wes1257", "wes1258", "wes1259", "wes1260", "wes1261", "wes1262", "wes1263",
	"wes1264", "wes1265", "wes1266", "wes1267", "wes1268", "wes1269", "wes1270", "wes1271",
	"wes1272", "wes1273", "wes1274", "wes1275", "wes1276", "wes1277", "wes1278", "wes1279",
	"wes1280", "wes1281", "wes1282", "wes1283", "wes1284", "wes1285", "wes1286", "wes1287",
	"wes1288", "wes1289", "wes1290", "wes1291", "wes1292", "wes1293", "wes1294", "wes1295",
	"wes1296", "wes1297", "wes1298", "wes1299", "wes1300", "wes1301", "wes1302", "wes1303",
	"wes1304", "wes1305", "wes1306", "wes1307", "wes1308", "wes1309", "wes1310", "wes1311",
	"wes1312", "wes1313", "wes1314", "wes1315", "wes1316", "wes1317", "wes1318", "wes1319",
	"wes1320", "wes1321", "wes1322", "wes1323", "wes1324", "wes1325", "wes1326", "wes1327",
	"wes1328", "wes1329", "wes1330", "wes1331", "wes1332", "wes1333", "wes1334", "wes1335",
	"wes1336", "wes1337", "wes1338", "wes1339", "wes1340", "wes1341", "wes1342", "wes1343",
	"wes1344", "wes1345", "wes1346", "wes1347", "wes1348", "wes1349", "wes1350", "wes1351",
	"wes1352", "wes1353", "wes1354", "wes1355", "wes1356", "wes1357", "wes1358", "wes1359",
	"wes1360", "wes1361", "wes1362", "wes1363", "wes1364", "wes1365", "wes1366", "wes1367",
	"wes1368", "wes1369", "wes1370", "wes1371", "wes1372", "wes1373", "wes1374", "wes1375",
	"wes1376", "wes1377", "wes1378", "wes1379", "wes1380", "wes1381", "wes1382", "wes1383",
	"wes1384", "wes1385", "wes1386", "wes1387", "wes1388", "wes1389", "wes1390", "wes1391",
	"wes1392", "wes1393", "wes1394", "wes1395", "wes1396", "wes1397", "wes1398", "wes1399",
	"wes1400", "wes1401", "wes1402", "wes1403", "wes1404", "wes1405", "wes1406", "wes1407",
	"wes1408", "wes1409", "wes1410", "wes1411", "wes1412", "wes1413", "wes1414", "wes1415",
	"wes1416", "wes1417", "wes1418", "wes1419", "wes1420", "wes1421", "wes1422", "wes1423",
	"wes1424", "wes1425", "wes1426", "wes1427", "wes1428", "wes1429", "wes1430", "wes1431",
	"wes1432", "wes1433", "wes1434", "wes1435", "wes1436", "wes1437", "wes1438", "wes1439",
	"wes1440", "wes1441", "wes1442", "wes1443", "wes1444", "wes1445", "wes1446", "wes1447",
	"wes1448", "wes1449", "wes1450", "wes1451", "wes1452", "wes1453", "wes1454", "wes1455",
	"wes1456", "wes1457", "wes1458", "wes1459", "wes1460", "wes1461", "wes1462", "wes1463",
	"wes1464", "wes1465", "wes1466", "wes1467", "wes1468", "wes1469", "wes1470", "wes1471",
	"wes1472", "wes1473", "wes1474", "wes1475", "wes1476", "wes1477", "wes1478", "wes1479",
	"wes1480", "wes1481", "wes1482", "wes1483", "wes1484", "wes1485", "wes1486", "wes1487",
	"wes1488", "wes1489", "wes1490", "wes1491", "wes1492", "wes1493", "wes1494", "wes1495",
	"wes1496", "wes1497", "wes1498", "wes1499", "wes1500", "wes1501", "wes1502", "wes1503",
	"wes1504", "wes1505", "wes1506", "wes1507", "wes1508", "wes1509", "wes1510", "wes1511",
	"wes1512", "wes1513", "wes1514", "wes1515", "wes1516", "wes1517", "wes1518", "wes1519",
	"wes1520", "wes1521", "wes1522", "wes1523", "wes1524", "wes1525", "wes1526", "wes1527",
	"wes1528", "wes1529", "wes1530", "wes1531", "wes1532", "wes1533", "wes1534", "wes1535",
	"wes1536", "wes1537", "wes1538", "wes1539", "wes1540", "wes1541", "wes1542", "wes1543",
	"wes1544", "wes1545", "wes1546", "wes1547", "wes1548", "wes1549", "wes1550", "wes1551",
	"wes1552", "wes1553", "wes1554", "wes1555", "wes1556", "wes1557", "wes1558", "wes1559",
	"wes1560", "wes1561", "wes1562", "wes1563", "wes1564", "wes1565", "wes1566", "wes1567",
	"wes1568", "wes1569", "wes1570", "wes1571", "wes1572", "wes1573", "wes1574", "wes1575",
	"wes1576", "wes1577", "wes1578", "wes1579", "wes1580", "wes1581", "wes1582", "wes1583",
	"wes1584", "wes1585", "wes1586", "wes1587", "wes1588", "wes1589", "wes1590", "wes1591",
	"wes1592", "wes1593", "wes1594", "wes1595", "wes1596", "wes1597", "wes1598", "wes1599",
	"wes1600", "wes1601", "wes1602", "wes1603", "wes1604", "wes1605", "wes1606", "wes1607",
	"wes1608", "wes1609", "wes1610", "wes1611", "wes1612", "wes1613", "wes1614", "wes1615",
	"wes1616", "wes1617", "wes1618", "wes1619", "wes1620", "wes1621", "wes1622", "wes1623",
	"wes1624", "wes1625", "wes1626", "wes1627", "wes1628", "wes1629", "wes1630", "wes1631",
	"wes1632", "wes1633", "wes1634", "wes1635", "wes1636", "wes1637", "wes1638", "wes1639",
	"wes1640", "wes1641", "wes1642", "wes1643", "wes1644", "wes1645", "wes1646", "wes1647",
	"wes1648", "wes1649", "wes1650", "wes1651", "wes1652", "wes1653", "wes1654", "wes1655",
	"wes1656", "wes1657", "wes1658", "wes1659", "wes1660", "wes1661", "wes1662", "wes1663",
	"wes1664", "wes1665", "wes1666", "wes1667", "wes1668", "wes1669", "wes1670", "wes1671",
	"wes1672", "wes1673", "wes1674", "wes1675", "wes1676", "wes1677", "wes1678", "wes1679",
	"wes1680", "wes1681", "wes1682", "wes1683", "wes1684", "wes1685", "wes1686", "wes1687",
	"wes1688", "wes1689", "wes1690", "wes1691", "wes1692", "wes1693", "wes1694", "wes1695",
	"wes1696", "wes1697", "wes1698", "wes1699", "wes1700", "wes1701", "wes1702", "wes1703",
	"wes1704", "wes1705", "wes1706", "wes1707", "wes1708", "wes1709", "wes1710", "wes1711",
	"wes1712", "wes1713", "wes1714", "wes1715", "wes1716", "wes1717", "wes1718", "wes1719",
	"wes1720", "wes1721", "wes1722", "wes1723", "wes1724", "wes1725", "wes1726", "wes1727",
	"wes1728", "wes1729", "wes1730", "wes1731", "wes1732", "wes1733", "wes1734", "wes1735",
	"wes1736", "wes1737", "wes1738", "wes1739", "wes1740", "wes1741", "wes1742", "wes1743",
	"wes1744", "wes1745", "wes1746", "wes1747", "wes1748", "wes1749", "wes1750", "wes1751",
	"wes1752", "wes1753", "wes1754", "wes1755", "wes1756", "wes1757", "wes1758", "wes1759",
	"wes1760", "wes1761", "wes1762", "wes1763", "wes1764", "wes1765", "wes1766", "wes1767",
	"wes1768", "wes1769", "wes1770", "wes1771", "wes1772", "wes1773", "wes1774", "wes1775",
	"wes1776", "wes1777", "wes1778", "wes1779", "wes1780", "wes1781", "wes1782", "wes1783",
	"wes1784", "wes1785", "wes1786", "wes1787", "wes1788", "wes1789", "wes1790", "wes1791",
	"wes1792", "wes1793", "wes1794", "wes1795", "wes1796", "wes1797", "wes1798", "wes1799",
	"wes1800", "wes1801", "wes1802", "wes1803", "wes1804", "wes1805", "wes1806", "wes1807",
	"wes1808", "wes1809", "wes1810", "wes1811", "wes1812", "wes1813", "wes1814", "wes1815",
	"wes1816", "wes1817", "wes1818", "wes1819", "wes1820", "wes1821", "wes1822", "wes1823",
	"wes1824", "wes1825", "wes1826", "wes1827", "wes1828", "wes1829", "wes1830", "wes1831",
	"wes1832", "wes1833", "wes1834", "wes1835", "wes1836", "wes1837", "wes1838", "wes1839",
	"wes1840", "wes1841", "wes1842", "wes1843", "wes1844", "wes1845", "wes1846", "wes1847",
	"wes1848", "wes1849", "wes1850", "wes1851", "wes1852", "wes1853", "wes1854", "wes1855",
	"wes1856", "wes1857", "wes1858", "wes1859", "wes1860", "wes1861", "wes1862", "wes1863",
	"wes1864", "wes1865", "wes1866", "wes1867", "wes1868", "wes1869", "wes1870", "wes1871",
	"wes1872", "wes1873", "wes1874", "wes1875", "wes1876", "wes1877", "wes1878", "wes1879",
	"wes1880", "wes1881", "wes1882", "wes1883", "wes1884", "wes1885", "wes1886", "wes1887",
	"wes1888", "wes1889", "wes1890", "wes1891", "wes1892", "wes1893", "wes1894", "wes1895",
	"wes1896", "wes1897", "wes1898", "wes1899", "wes1900", "wes1901", "wes1902", "wes1903",
	"wes1904", "wes1905", "wes1906", "wes1907", "wes1908", "wes1909", "wes1910", "wes1911",
	"wes1912", "wes1913", "wes1914", "wes1915", "wes1916", "wes1917", "wes1918", "wes1919",
	"wes1920", "wes1921", "wes1922", "wes1923", "wes1924", "wes1925", "wes1926", "wes1927",
	"wes1928", "wes1929", "wes1930", "wes1931", "wes1932", "wes1933", "wes1934", "wes1935",
	"wes1936", "wes1937", "wes1938", "wes1939", "wes1940", "wes1941", "wes1942", "wes1943",
	"wes1944", "wes1945", "wes1946", "wes1947", "wes1948", "wes1949", "wes1950", "wes1951",
	"wes1952", "wes1953", "wes1954", "wes1955", "wes1956", "wes1957", "wes1958", "wes1959",
	"wes1960", "wes1961", "wes1962", "wes1963", "wes1964", "wes1965", "wes1966", "wes1967",
	"wes1968", "wes1969", "wes1970", "wes1971", "wes1972", "wes1973", "wes1974", "wes1975",
	"wes1976", "wes1977", "wes1978", "wes1979", "wes1980", "wes1981", "wes1982", "wes1983",
	"wes1984", "wes1985", "wes1986", "wes1987", "wes1988", "wes1989", "wes1990", "wes1991",
	"wes1992", "wes1993", "wes1994", "wes1995", "wes1996", "wes1997", "wes1998", "wes1999",
	"wes2000", "wes2001", "wes2002", "wes2003", "wes2004", "wes2005", "wes2006", "wes2007",
	"wes2008", "wes2009", "wes2010", "wes2011", "wes2012", "wes2013", "wes2014", "wes2015",
	"wes2016", "wes2017", "wes2018", "wes2019", "wes2020", "wes2021", "wes2022", "wes2023",
	"wes2024", "wes2025", "wes2026", "wes2027", "wes2028", "wes2029", "wes2030", "wes2031",
	"wes2032", "wes2033", "wes2034", "wes2035", "wes2036", "wes2037", "wes2038", "wes2039",
	"wes2040", "wes2041", "wes2042", "wes2043", "wes2044", "wes2045", "wes2046", "wes2047",
}
